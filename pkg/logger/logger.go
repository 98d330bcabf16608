package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New создает логгер с заданным форматом ("json" или "text") и выводом
func New(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	switch strings.ToLower(format) {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
