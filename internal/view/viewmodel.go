// Package view строит модель отображения дашборда из снимка состояния.
// Все функции чистые и не зависят от HTTP.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/shenikar/police_smart_analytics/internal/service"
)

// Placeholder выводится вместо отсутствующего значения
const Placeholder = "—"

const (
	MessageLoading = "Loading…"
	MessageEmpty   = `No incidents yet. Use "Seed sample data" to generate demo records.`
)

// Color имя цвета бейджа
type Color string

const (
	ColorGray   Color = "gray"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorAmber  Color = "amber"
	ColorViolet Color = "violet"
)

var severityColors = map[models.Severity]Color{
	models.SeverityLow:      ColorGreen,
	models.SeverityMedium:   ColorAmber,
	models.SeverityHigh:     ColorRed,
	models.SeverityCritical: ColorRed,
}

var statusColors = map[models.Status]Color{
	models.StatusReported:   ColorBlue,
	models.StatusDispatched: ColorAmber,
	models.StatusOnScene:    ColorViolet,
	models.StatusResolved:   ColorGreen,
	models.StatusClosed:     ColorGray,
}

// SeverityColor цвет бейджа серьезности; неизвестное значение дает серый
func SeverityColor(severity string) Color {
	if c, ok := severityColors[models.Severity(severity)]; ok {
		return c
	}
	return ColorGray
}

// StatusColor цвет бейджа статуса; неизвестное значение дает серый
func StatusColor(status string) Color {
	if c, ok := statusColors[models.Status(status)]; ok {
		return c
	}
	return ColorGray
}

// KPI одна карточка с показателем
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Bar полоса диаграммы по типам
type Bar struct {
	Type     string  `json:"type"`
	Count    int     `json:"count"`
	Label    string  `json:"label"`
	Fraction float64 `json:"fraction"`
	Percent  float64 `json:"percent"`
}

// Row строка таблицы инцидентов
type Row struct {
	ID              string `json:"id"`
	IncidentID      string `json:"incident_id"`
	Type            string `json:"type"`
	TypeColor       Color  `json:"type_color"`
	Severity        string `json:"severity"`
	SeverityColor   Color  `json:"severity_color"`
	Status          string `json:"status"`
	StatusColor     Color  `json:"status_color"`
	Precinct        string `json:"precinct"`
	ResponseMinutes string `json:"response_minutes"`
}

// Dashboard модель отображения целиком
type Dashboard struct {
	KPIs      []KPI              `json:"kpis"`
	Bars      []Bar              `json:"bars"`
	Rows      []Row              `json:"rows"`
	Loading   bool               `json:"loading"`
	Message   string             `json:"message,omitempty"`
	Filters   models.FilterState `json:"filters"`
	Facets    []models.Facet     `json:"facets"`
	UpdatedAt string             `json:"updated_at"`
}

// Build строит модель отображения из снимка и текущего фильтра
func Build(state service.ViewState, filters models.FilterState) Dashboard {
	rows := Rows(state.Incidents)
	return Dashboard{
		KPIs:      KPIs(state.Summary),
		Bars:      Bars(state.Summary),
		Rows:      rows,
		Loading:   state.Loading,
		Message:   EmptyMessage(len(rows), state.Loading),
		Filters:   filters,
		Facets:    models.Facets(),
		UpdatedAt: formatTime(state.UpdatedAt),
	}
}

// KPIs карточки: всего, открыто, среднее время реагирования, high/critical
func KPIs(s *models.Summary) []KPI {
	return []KPI{
		{Label: "Total Incidents", Value: TotalValue(s)},
		{Label: "Open Cases", Value: OpenValue(s)},
		{Label: "Avg Response (min)", Value: AvgResponseValue(s)},
		{Label: "High/Critical", Value: strconv.Itoa(HighCritical(s))},
	}
}

func TotalValue(s *models.Summary) string {
	if s == nil {
		return Placeholder
	}
	return countValue(s.Total)
}

func OpenValue(s *models.Summary) string {
	if s == nil {
		return Placeholder
	}
	return countValue(s.Open)
}

// countValue пустое значение показывается прочерком, а не нулем
func countValue(n *int) string {
	if n == nil {
		return Placeholder
	}
	return strconv.Itoa(*n)
}

func AvgResponseValue(s *models.Summary) string {
	if s == nil || s.AvgResponseMinutes == nil {
		return Placeholder
	}
	return models.FormatMinutes(*s.AvgResponseMinutes)
}

// HighCritical сумма high и critical; отсутствующий ключ считается нулем
func HighCritical(s *models.Summary) int {
	return s.SeverityCount(models.SeverityHigh) + s.SeverityCount(models.SeverityCritical)
}

// BarFraction доля полосы: min(1, count / max(1, total)).
// Ограничение сверху защищает отображение от несогласованных данных.
func BarFraction(count, total int) float64 {
	denom := total
	if denom < 1 {
		denom = 1
	}
	f := float64(count) / float64(denom)
	if f > 1 {
		return 1
	}
	return f
}

// Bars полосы по типам в порядке, полученном от бэкенда
func Bars(s *models.Summary) []Bar {
	if s == nil {
		return []Bar{}
	}

	order := s.TypeOrder
	if len(order) != len(s.ByType) {
		order = make([]string, 0, len(s.ByType))
		for k := range s.ByType {
			order = append(order, k)
		}
		sort.Strings(order)
	}

	bars := make([]Bar, 0, len(order))
	for _, t := range order {
		count := s.ByType[t]
		f := BarFraction(count, s.TotalCount())
		bars = append(bars, Bar{
			Type:     t,
			Count:    count,
			Label:    fmt.Sprintf("%s (%d)", t, count),
			Fraction: f,
			Percent:  f * 100,
		})
	}
	return bars
}

// Rows строки таблицы с подстановкой заглушек
func Rows(incidents []models.Incident) []Row {
	rows := make([]Row, 0, len(incidents))
	for _, inc := range incidents {
		rows = append(rows, NewRow(inc))
	}
	return rows
}

func NewRow(inc models.Incident) Row {
	precinct := Placeholder
	if inc.Precinct != nil && *inc.Precinct != "" {
		precinct = *inc.Precinct
	}
	response := Placeholder
	if inc.ResponseMinutes != nil {
		response = models.FormatMinutes(*inc.ResponseMinutes)
	}
	return Row{
		ID:              inc.ID.String(),
		IncidentID:      inc.IncidentID,
		Type:            inc.Type,
		TypeColor:       ColorBlue,
		Severity:        string(inc.Severity),
		SeverityColor:   SeverityColor(string(inc.Severity)),
		Status:          string(inc.Status),
		StatusColor:     StatusColor(string(inc.Status)),
		Precinct:        precinct,
		ResponseMinutes: response,
	}
}

// EmptyMessage сообщение для пустой таблицы; при наличии строк пусто
func EmptyMessage(rowCount int, loading bool) string {
	if rowCount > 0 {
		return ""
	}
	if loading {
		return MessageLoading
	}
	return MessageEmpty
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(time.RFC3339)
}
