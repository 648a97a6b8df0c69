package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNew_ProductionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("k", "v").Msg("hola")

	line := logLine(t, &buf)
	assert.Equal(t, "hola", line["message"])
	assert.Equal(t, "v", line["k"])
	assert.NotEmpty(t, line["time"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "error", Output: &buf})

	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	log.Error().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel_Desconocido(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Output: &buf})

	log.WithComponent("mongodb").Warn().Msg("ping fallido")

	line := logLine(t, &buf)
	assert.Equal(t, "mongodb", line["component"])
	assert.Equal(t, "ping fallido", line["message"])
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Output: &buf})

	log.WithRequest("POST", "/api/admin/news").Error().Msg("error interno")

	line := logLine(t, &buf)
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/api/admin/news", line["path"])
}
