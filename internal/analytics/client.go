package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	summaryPath   = "/analytics/summary"
	incidentsPath = "/incidents"
	seedPath      = "/incidents/seed"

	// RequestIDHeader заголовок, по которому запросы одного цикла обновления связываются в логах бэкенда
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 512
)

type requestIDKey struct{}

// WithRequestID кладет идентификатор цикла обновления в контекст
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom достает идентификатор из контекста или генерирует новый
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Client HTTP-клиент аналитического сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *logrus.Logger
}

// NewClient создает клиент. timeout == 0 отключает ограничение времени запроса.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP создает клиент поверх готового http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		validate:   validator.New(),
		logger:     logger,
	}
}

// GetSummary загружает агрегированную статистику
func (c *Client) GetSummary(ctx context.Context) (*models.Summary, error) {
	summary := &models.Summary{}
	if err := c.getJSON(ctx, summaryPath, nil, summary); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(summary); err != nil {
		return nil, fmt.Errorf("%w: summary: %v", ErrDecode, err)
	}
	return summary, nil
}

// ListIncidents загружает список инцидентов по фильтру
func (c *Client) ListIncidents(ctx context.Context, filters models.FilterState) ([]models.Incident, error) {
	list := &models.IncidentList{}
	if err := c.getJSON(ctx, incidentsPath, filters.ToQuery(), list); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(list); err != nil {
		return nil, fmt.Errorf("%w: incidents: %v", ErrDecode, err)
	}
	if list.Items == nil {
		return []models.Incident{}, nil
	}
	return list.Items, nil
}

// Seed просит бэкенд сгенерировать n демонстрационных записей. Тело ответа игнорируется.
func (c *Client) Seed(ctx context.Context, n int) error {
	params := []models.QueryParam{{Key: "n", Value: strconv.Itoa(n)}}
	resp, err := c.do(ctx, http.MethodPost, seedPath, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, params []models.QueryParam, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrTransport, path, err)
	}
	// null верхнего уровня не является ответом
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return fmt.Errorf("%w: %s: null body", ErrDecode, path)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}

// do выполняет запрос и возвращает ответ только со статусом 2xx
func (c *Client) do(ctx context.Context, method, path string, params []models.QueryParam) (*http.Response, error) {
	requestID := RequestIDFrom(ctx)
	log := c.logger.WithFields(logrus.Fields{
		"component":  "analytics",
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, params), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("Backend request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "duration": time.Since(start)})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		log.Debug("Backend returned error status")
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	log.Debug("Backend request completed")
	return resp, nil
}

// endpoint собирает URL, сохраняя порядок параметров
func (c *Client) endpoint(path string, params []models.QueryParam) string {
	if len(params) == 0 {
		return c.baseURL + path
	}
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(path)
	b.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
