package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative gap tolerance",
			mutate:  func(c *Config) { c.DefaultGapTolerance = -time.Minute },
			wantErr: "gap tolerance",
		},
		{
			name: "negative override",
			mutate: func(c *Config) {
				c.GapToleranceOverrides = map[string]time.Duration{"a": -time.Minute}
			},
			wantErr: "override",
		},
		{
			name: "empty override app id",
			mutate: func(c *Config) {
				c.GapToleranceOverrides = map[string]time.Duration{"": time.Minute}
			},
			wantErr: "empty app id",
		},
		{
			name:    "negative app usage threshold",
			mutate:  func(c *Config) { c.MinAppUsage = -time.Second },
			wantErr: "app usage",
		},
		{
			name:    "zero idle window threshold",
			mutate:  func(c *Config) { c.MinIdleWindow = 0 },
			wantErr: "idle window",
		},
		{
			name:    "negative padding",
			mutate:  func(c *Config) { c.WindowPadding = -time.Minute },
			wantErr: "padding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestToleranceFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GapToleranceOverrides = map[string]time.Duration{
		"com.electron.lark.iron": 10 * time.Minute,
	}

	assert.Equal(t, 10*time.Minute, cfg.ToleranceFor("com.electron.lark.iron"))
	assert.Equal(t, 3*time.Minute, cfg.ToleranceFor("com.google.Chrome"))
}
