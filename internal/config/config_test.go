package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Capacity", cfg.Capacity, 10},
		{"Prompt", cfg.Prompt, "Command: "},
		{"Strict", cfg.Strict, false},
		{"Color", cfg.Color, true},
		{"TelemetryPath", cfg.TelemetryPath, ""},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "capacity",
			envKey: "SHAPELIST_CAPACITY",
			envVal: "3",
			field:  func(c Config) any { return c.Capacity },
			want:   3,
		},
		{
			name:   "prompt",
			envKey: "SHAPELIST_PROMPT",
			envVal: "> ",
			field:  func(c Config) any { return c.Prompt },
			want:   "> ",
		},
		{
			name:   "strict",
			envKey: "SHAPELIST_STRICT",
			envVal: "true",
			field:  func(c Config) any { return c.Strict },
			want:   true,
		},
		{
			name:   "color",
			envKey: "SHAPELIST_COLOR",
			envVal: "false",
			field:  func(c Config) any { return c.Color },
			want:   false,
		},
		{
			name:   "telemetry_path",
			envKey: "SHAPELIST_TELEMETRY_PATH",
			envVal: "/tmp/session.jsonl",
			field:  func(c Config) any { return c.TelemetryPath },
			want:   "/tmp/session.jsonl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so SHAPELIST_* env vars map to config keys.
			viper.SetEnvPrefix("SHAPELIST")
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".shapelist.yaml")
	content := "capacity: 4\nstrict: true\nprompt: \"shapes> \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Capacity != 4 || !cfg.Strict || cfg.Prompt != "shapes> " {
		t.Errorf("config file not applied: %+v", cfg)
	}
	if !cfg.Color {
		t.Error("unset key should keep its default")
	}
}

func TestLoad_NegativeCapacity(t *testing.T) {
	resetViper()
	viper.Set("capacity", -1)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for negative capacity")
	}
	if !strings.Contains(err.Error(), "capacity") {
		t.Errorf("error should mention capacity, got: %v", err)
	}
}
