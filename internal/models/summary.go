package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Summary агрегированная статистика. Заменяется целиком при каждой загрузке.
type Summary struct {
	Total              *int           `json:"total" validate:"omitempty,gte=0"`
	Open               *int           `json:"open" validate:"omitempty,gte=0"`
	AvgResponseMinutes *float64       `json:"avg_response_minutes,omitempty"`
	ByType             map[string]int `json:"by_type" validate:"dive,gte=0"`
	BySeverity         map[string]int `json:"by_severity" validate:"dive,gte=0"`

	// TypeOrder порядок ключей by_type в том виде, в котором их прислал бэкенд
	TypeOrder []string `json:"-"`
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	type plain Summary
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw struct {
		ByType json.RawMessage `json:"by_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	order, err := objectKeys(raw.ByType)
	if err != nil {
		return fmt.Errorf("by_type: %w", err)
	}
	p.TypeOrder = order

	if p.ByType == nil {
		p.ByType = map[string]int{}
	}
	if p.BySeverity == nil {
		p.BySeverity = map[string]int{}
	}
	*s = Summary(p)
	return nil
}

// TotalCount общее количество; отсутствующее значение равно 0
func (s *Summary) TotalCount() int {
	if s == nil || s.Total == nil {
		return 0
	}
	return *s.Total
}

// SeverityCount количество по уровню серьезности, отсутствующий ключ равен 0
func (s *Summary) SeverityCount(sev Severity) int {
	if s == nil {
		return 0
	}
	return s.BySeverity[string(sev)]
}

// objectKeys возвращает ключи JSON-объекта в порядке следования
func objectKeys(data json.RawMessage) ([]string, error) {
	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	keys := make([]string, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
