package v1

import (
	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/shenikar/police_smart_analytics/internal/service"
	"github.com/shenikar/police_smart_analytics/internal/view"
)

// DTOToFilterState преобразует DTO фильтра в доменный снимок
func DTOToFilterState(dto FilterRequest) models.FilterState {
	return models.FilterState{
		Type:     dto.Type,
		Severity: dto.Severity,
		Status:   dto.Status,
		Precinct: dto.Precinct,
	}
}

// FilterStateToResponse преобразует снимок фильтра в DTO для ответа
func FilterStateToResponse(f models.FilterState) *FilterResponse {
	query := make(map[string]string)
	for _, p := range f.ToQuery() {
		query[p.Key] = p.Value
	}
	return &FilterResponse{
		Type:     f.Type,
		Severity: f.Severity,
		Status:   f.Status,
		Precinct: f.Precinct,
		Query:    query,
	}
}

// ViewStateToResponse строит модель отображения для ответа
func ViewStateToResponse(state service.ViewState, filters models.FilterState) DashboardResponse {
	return view.Build(state, filters)
}
