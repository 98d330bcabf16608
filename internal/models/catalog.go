package models

// Варианты значений для выпадающих списков фильтра
var (
	IncidentTypes = []string{"theft", "assault", "burglary", "fraud", "vandalism", "traffic", "narcotics", "disturbance", "other"}
	Severities    = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	Statuses      = []Status{StatusReported, StatusDispatched, StatusOnScene, StatusResolved, StatusClosed}
	Precincts     = []string{"Central", "North", "South", "East", "West"}
)

// FacetOption вариант значения фасета; пустое Value соответствует "All ..."
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Facet фасет с вариантами значений
type Facet struct {
	Name    string        `json:"name"`
	Options []FacetOption `json:"options"`
}

// Facets каталог фасетов в порядке отображения
func Facets() []Facet {
	return []Facet{
		newFacet(FieldType, "All Types", IncidentTypes),
		newFacet(FieldSeverity, "All Severities", toStrings(Severities)),
		newFacet(FieldStatus, "All Statuses", toStrings(Statuses)),
		newFacet(FieldPrecinct, "All Precincts", Precincts),
	}
}

func newFacet(name, allLabel string, values []string) Facet {
	options := make([]FacetOption, 0, len(values)+1)
	options = append(options, FacetOption{Value: "", Label: allLabel})
	for _, v := range values {
		options = append(options, FacetOption{Value: v, Label: v})
	}
	return Facet{Name: name, Options: options}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
