package models

// Имена фасетов в фиксированном порядке сериализации
const (
	FieldType     = "type"
	FieldSeverity = "severity"
	FieldStatus   = "status"
	FieldPrecinct = "precinct"
)

// FilterFields порядок, в котором фасеты попадают в запрос
var FilterFields = []string{FieldType, FieldSeverity, FieldStatus, FieldPrecinct}

// FilterState снимок выбранных фасетов. Пустое значение означает "без ограничения".
// Значения не проверяются: неизвестное значение просто ничего не найдет на сервере.
type FilterState struct {
	Type     string `json:"type" form:"type"`
	Severity string `json:"severity" form:"severity"`
	Status   string `json:"status" form:"status"`
	Precinct string `json:"precinct" form:"precinct"`
}

// QueryParam одна пара ключ-значение запроса
type QueryParam struct {
	Key   string
	Value string
}

// WithField возвращает новый снимок с замененным полем.
// Для неизвестного имени возвращается исходный снимок.
func (f FilterState) WithField(name, value string) FilterState {
	switch name {
	case FieldType:
		f.Type = value
	case FieldSeverity:
		f.Severity = value
	case FieldStatus:
		f.Status = value
	case FieldPrecinct:
		f.Precinct = value
	}
	return f
}

// Get значение фасета по имени
func (f FilterState) Get(name string) string {
	switch name {
	case FieldType:
		return f.Type
	case FieldSeverity:
		return f.Severity
	case FieldStatus:
		return f.Status
	case FieldPrecinct:
		return f.Precinct
	}
	return ""
}

// IsEmpty true, если ни один фасет не выбран
func (f FilterState) IsEmpty() bool {
	return f == FilterState{}
}

// ToQuery сериализует фильтр в упорядоченный список пар.
// Пустые фасеты в запрос не попадают.
func (f FilterState) ToQuery() []QueryParam {
	params := make([]QueryParam, 0, len(FilterFields))
	for _, name := range FilterFields {
		if v := f.Get(name); v != "" {
			params = append(params, QueryParam{Key: name, Value: v})
		}
	}
	return params
}
