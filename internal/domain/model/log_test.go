package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "initializes nil fields",
			entry: &LogEntry{},
			key:   "site_id",
			value: "S1",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "S1", e.Fields["site_id"])
			},
		},
		{
			name:  "overwrites existing field",
			entry: &LogEntry{Fields: map[string]interface{}{"total_cajas": 1}},
			key:   "total_cajas",
			value: 3,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 3, e.Fields["total_cajas"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := (&LogEntry{ActionType: ActionPackMixed}).
		WithField("items", 2).
		WithFields(map[string]interface{}{"total_cajas": 2, "sin_cobertura": 10})

	assert.Equal(t, 2, entry.Fields["items"])
	assert.Equal(t, 2, entry.Fields["total_cajas"])
	assert.Equal(t, 10, entry.Fields["sin_cobertura"])
}
