package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{FileEnv, "DB_PATH", "HOUSEHUB_NAMESPACE", "PORT", "LOG_LEVEL", "ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected addr %s", cfg.Addr())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "househub.yaml")
	content := "database_path: /var/lib/househub/house.db\nnamespace: flat-3b\nport: \"9000\"\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(FileEnv, path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		DatabasePath:  "/var/lib/househub/house.db",
		Namespace:     "flat-3b",
		Port:          "9100",
		LogLevel:      "debug",
		AllowedOrigin: "*",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{"non-numeric port", func(t *testing.T) { t.Setenv("PORT", "http") }},
		{"port out of range", func(t *testing.T) { t.Setenv("PORT", "70000") }},
		{"missing file", func(t *testing.T) { t.Setenv(FileEnv, filepath.Join(t.TempDir(), "absent.yaml")) }},
		{"malformed file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte("port: [8080"), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			t.Setenv(FileEnv, path)
		}},
		{"blank namespace in file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "blank.yaml")
			if err := os.WriteFile(path, []byte("namespace: \"  \"\n"), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			t.Setenv(FileEnv, path)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setup(t)
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
