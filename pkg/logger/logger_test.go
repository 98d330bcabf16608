package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json", &buf)

	log.WithField("service", "dashboard").Info("refreshed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "refreshed", entry["msg"])
	assert.Equal(t, "dashboard", entry["service"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_TextAndBadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("verbose", "text", &buf)

	log.Info("hello")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "msg=hello")
}
