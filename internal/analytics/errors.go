package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport сетевая ошибка: запрос не дошел или ответ не прочитан
	ErrTransport = errors.New("analytics: transport failure")
	// ErrDecode тело ответа не JSON или не соответствует схеме
	ErrDecode = errors.New("analytics: malformed response")
)

// StatusError бэкенд ответил статусом вне 2xx
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("analytics: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("analytics: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsStatus true, если err содержит StatusError с указанным кодом
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
