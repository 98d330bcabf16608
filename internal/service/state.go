package service

import (
	"time"

	"github.com/shenikar/police_smart_analytics/internal/models"
)

// StalePolicy определяет, что делать с ответом устаревшего цикла обновления
type StalePolicy int

const (
	// DiscardStale отбрасывает ответ, если после него был запущен более новый цикл
	DiscardStale StalePolicy = iota
	// LastResolvedWins применяет любой ответ; побеждает тот, что пришел последним
	LastResolvedWins
)

func (p StalePolicy) String() string {
	if p == LastResolvedWins {
		return "last_resolved_wins"
	}
	return "discard_stale"
}

// ViewState снимок состояния дашборда. Заменяется целиком, поля на месте не меняются.
type ViewState struct {
	Summary   *models.Summary
	Incidents []models.Incident
	Loading   bool

	// Generation номер последнего запущенного цикла обновления
	Generation uint64
	// Applied номер цикла, чьи данные сейчас в снимке
	Applied   uint64
	LastError string
	UpdatedAt time.Time
}

// InitialViewState начальное состояние: данных нет, идет загрузка
func InitialViewState() ViewState {
	return ViewState{
		Incidents: []models.Incident{},
		Loading:   true,
	}
}

// Event событие цикла обновления
type Event interface {
	generation() uint64
}

// RefreshStarted цикл gen запущен
type RefreshStarted struct {
	Gen uint64
}

// RefreshSucceeded цикл gen получил оба ответа
type RefreshSucceeded struct {
	Gen       uint64
	Summary   *models.Summary
	Incidents []models.Incident
	At        time.Time
}

// RefreshFailed цикл gen завершился ошибкой
type RefreshFailed struct {
	Gen uint64
	Err error
}

func (e RefreshStarted) generation() uint64   { return e.Gen }
func (e RefreshSucceeded) generation() uint64 { return e.Gen }
func (e RefreshFailed) generation() uint64    { return e.Gen }

// Reduce чистая функция перехода: Idle -> Loading -> {Success | Failed} -> Idle.
// Промежуточных состояний нет: успех заменяет сводку и список одним шагом,
// ошибка сохраняет предыдущие данные.
func Reduce(state ViewState, ev Event, policy StalePolicy) ViewState {
	switch e := ev.(type) {
	case RefreshStarted:
		next := state
		next.Loading = true
		if e.Gen > next.Generation {
			next.Generation = e.Gen
		}
		return next

	case RefreshSucceeded:
		if isStale(state, e.Gen, policy) {
			return state
		}
		incidents := e.Incidents
		if incidents == nil {
			incidents = []models.Incident{}
		}
		next := state
		next.Summary = e.Summary
		next.Incidents = incidents
		next.Applied = e.Gen
		next.LastError = ""
		next.UpdatedAt = e.At
		next.Loading = false
		return next

	case RefreshFailed:
		if isStale(state, e.Gen, policy) {
			return state
		}
		next := state
		if e.Err != nil {
			next.LastError = e.Err.Error()
		}
		next.Loading = false
		return next
	}
	return state
}

func isStale(state ViewState, gen uint64, policy StalePolicy) bool {
	return policy == DiscardStale && gen < state.Generation
}
