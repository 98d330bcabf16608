package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/police_smart_analytics/internal/analytics"
	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// AnalyticsBackend определяет контракт удаленного аналитического сервиса
type AnalyticsBackend interface {
	GetSummary(ctx context.Context) (*models.Summary, error)
	ListIncidents(ctx context.Context, filters models.FilterState) ([]models.Incident, error)
	Seed(ctx context.Context, n int) error
}

// DashboardService определяет контракт контроллера дашборда
type DashboardService interface {
	Refresh(ctx context.Context, filters models.FilterState) ViewState
	SeedAndRefresh(ctx context.Context, filters models.FilterState) ViewState
	View() ViewState
	Filters() models.FilterState
	SetFilter(name, value string) models.FilterState
	ApplyFilters(filters models.FilterState)
}

// Options параметры контроллера
type Options struct {
	SeedCount   int
	StalePolicy StalePolicy
	// Now источник времени; по умолчанию time.Now
	Now func() time.Time
}

type dashboardController struct {
	backend AnalyticsBackend
	logger  *logrus.Logger
	opts    Options

	mu      sync.Mutex
	state   ViewState
	filters models.FilterState
	lastGen uint64
}

func NewDashboardController(backend AnalyticsBackend, logger *logrus.Logger, opts Options) DashboardService {
	if opts.SeedCount <= 0 {
		opts.SeedCount = models.DefaultSeedCount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &dashboardController{
		backend: backend,
		logger:  logger,
		opts:    opts,
		state:   InitialViewState(),
	}
}

// Refresh загружает сводку и список инцидентов и атомарно заменяет снимок.
// При ошибке прежние данные сохраняются, флаг загрузки снимается в любом случае.
func (c *dashboardController) Refresh(ctx context.Context, filters models.FilterState) ViewState {
	gen := c.start()
	requestID := uuid.NewString()
	ctx = analytics.WithRequestID(ctx, requestID)

	log := c.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "Refresh",
		"generation": gen,
		"request_id": requestID,
	})
	log.WithField("filters", filters).Debug("Refreshing dashboard")

	summary, incidents, err := c.fetch(ctx, filters)
	if err != nil {
		log.WithError(err).Error("Failed to refresh dashboard")
		return c.dispatch(RefreshFailed{Gen: gen, Err: err})
	}

	next := c.dispatch(RefreshSucceeded{
		Gen:       gen,
		Summary:   summary,
		Incidents: incidents,
		At:        c.opts.Now(),
	})
	if next.Applied != gen {
		log.Info("Discarded stale refresh result")
		return next
	}
	log.WithField("count", len(incidents)).Info("Dashboard refreshed successfully")
	return next
}

// SeedAndRefresh генерирует демо-данные и затем обновляет дашборд.
// Ошибка генерации не мешает обновлению.
func (c *dashboardController) SeedAndRefresh(ctx context.Context, filters models.FilterState) ViewState {
	log := c.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SeedAndRefresh",
		"n":       c.opts.SeedCount,
	})
	log.Info("Seeding sample data")

	if err := c.backend.Seed(ctx, c.opts.SeedCount); err != nil {
		log.WithError(err).Warn("Seed request failed, refreshing anyway")
	}
	return c.Refresh(ctx, filters)
}

// View возвращает текущий снимок
func (c *dashboardController) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Filters возвращает текущий фильтр
func (c *dashboardController) Filters() models.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilter меняет одно поле фильтра без обновления данных
func (c *dashboardController) SetFilter(name, value string) models.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = c.filters.WithField(name, value)
	return c.filters
}

// ApplyFilters заменяет фильтр целиком
func (c *dashboardController) ApplyFilters(filters models.FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = filters
}

func (c *dashboardController) start() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastGen++
	c.state = Reduce(c.state, RefreshStarted{Gen: c.lastGen}, c.opts.StalePolicy)
	return c.lastGen
}

func (c *dashboardController) dispatch(ev Event) ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ev, c.opts.StalePolicy)
	return c.state
}

// fetch запрашивает оба ресурса параллельно; первая ошибка отменяет второй запрос
func (c *dashboardController) fetch(ctx context.Context, filters models.FilterState) (*models.Summary, []models.Incident, error) {
	var (
		summary   *models.Summary
		incidents []models.Incident
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := c.backend.GetSummary(gctx)
		if err != nil {
			return fmt.Errorf("service: could not load summary: %w", err)
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		list, err := c.backend.ListIncidents(gctx, filters)
		if err != nil {
			return fmt.Errorf("service: could not list incidents: %w", err)
		}
		incidents = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return summary, incidents, nil
}
