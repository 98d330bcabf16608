package v1

import "github.com/shenikar/police_smart_analytics/internal/view"

// SetFilterRequest DTO для изменения одного фасета
// @Description DTO для изменения одного фасета
type SetFilterRequest struct {
	Field string `json:"field" validate:"required,oneof=type severity status precinct"`
	Value string `json:"value"`
}

// FilterRequest DTO фильтра целиком; пустое поле означает "все значения"
// @Description DTO фильтра целиком
type FilterRequest struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Precinct string `json:"precinct"`
}

// FilterResponse DTO текущего фильтра и его сериализации в запрос
// @Description DTO текущего фильтра
type FilterResponse struct {
	Type     string            `json:"type"`
	Severity string            `json:"severity"`
	Status   string            `json:"status"`
	Precinct string            `json:"precinct"`
	Query    map[string]string `json:"query"`
}

// DashboardResponse DTO модели отображения дашборда
// @Description DTO модели отображения дашборда
type DashboardResponse = view.Dashboard
