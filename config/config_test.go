package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToleranceOverrides(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected map[string]time.Duration
		wantErr  bool
	}{
		{
			name:     "empty value",
			value:    "",
			expected: nil,
		},
		{
			name:  "single override",
			value: "com.electron.lark.iron:10",
			expected: map[string]time.Duration{
				"com.electron.lark.iron": 10 * time.Minute,
			},
		},
		{
			name:  "multiple overrides with spaces",
			value: "com.electron.lark.iron:10, us.zoom.xos:7.5",
			expected: map[string]time.Duration{
				"com.electron.lark.iron": 10 * time.Minute,
				"us.zoom.xos":            7*time.Minute + 30*time.Second,
			},
		},
		{
			name:    "missing separator",
			value:   "com.electron.lark.iron",
			wantErr: true,
		},
		{
			name:    "non-numeric minutes",
			value:   "app:ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides, err := ParseToleranceOverrides(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, overrides)
		})
	}
}

func TestParseKeyValueList(t *testing.T) {
	names, err := parseKeyValueList("com.google.Chrome=Chrome,com.apple.finder=Finder", "=")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"com.google.Chrome": "Chrome",
		"com.apple.finder":  "Finder",
	}, names)

	_, err = parseKeyValueList("broken-entry", "=")
	assert.Error(t, err)
}
