package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Severity уровень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Status статус обработки инцидента
type Status string

const (
	StatusReported   Status = "reported"
	StatusDispatched Status = "dispatched"
	StatusOnScene    Status = "on_scene"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// IncidentKey идентификатор записи; бэкенд может прислать как число, так и строку
type IncidentKey string

func (k *IncidentKey) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*k = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid incident key: %w", err)
		}
		*k = IncidentKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid incident key %s: %w", raw, err)
	}
	*k = IncidentKey(n.String())
	return nil
}

func (k IncidentKey) String() string {
	return string(k)
}

// Incident запись об инциденте, полученная от аналитического сервиса.
// После получения не изменяется.
type Incident struct {
	ID              IncidentKey `json:"id" validate:"required"`
	IncidentID      string      `json:"incident_id"`
	Type            string      `json:"type"`
	Severity        Severity    `json:"severity"`
	Status          Status      `json:"status"`
	Precinct        *string     `json:"precinct,omitempty"`
	ResponseMinutes *float64    `json:"response_minutes,omitempty"`
}

// DefaultSeedCount сколько демонстрационных записей просить у бэкенда по умолчанию
const DefaultSeedCount = 80

// IncidentList ответ GET /incidents
type IncidentList struct {
	Items []Incident `json:"items" validate:"dive"`
}

// FormatMinutes печатает число минут без лишних нулей
func FormatMinutes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
