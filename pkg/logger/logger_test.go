package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("customer_id", "9876543210").Msg("deposit confirmed")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "deposit confirmed", output["message"])
	assert.Equal(t, "9876543210", output["customer_id"])
	assert.Equal(t, "info", output["level"])
	assert.Contains(t, output, "time")
}

func TestComponent_TagsEntries(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "rate_oracle")

	log.Info().Msg("sample recorded")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "rate_oracle", output["component"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"WARN", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug().Msg("debug")
			assert.Equal(t, tt.debugLogged, buf.Len() > 0)

			buf.Reset()
			log.Info().Msg("info")
			assert.Equal(t, tt.infoLogged, buf.Len() > 0)
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
