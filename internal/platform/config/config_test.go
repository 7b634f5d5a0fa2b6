package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear everything Load reads so the defaults are observable
	for _, key := range []string{
		"PORT", "JWT_SECRET", "CORS_ORIGINS",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("unexpected DB defaults: %+v", cfg.DB)
	}
	if cfg.DB.SSLMode != "disable" {
		t.Errorf("expected sslmode disable, got %q", cfg.DB.SSLMode)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected empty redis addr, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "movies")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("expected JWT secret to be read, got %q", cfg.JWTSecret)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 5433 {
		t.Errorf("unexpected DB config: %+v", cfg.DB)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected Redis config: %+v", cfg.Redis)
	}
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		DBName:   "movie_backend",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=postgres password=postgres dbname=movie_backend sslmode=disable"
	if dsn := cfg.DSN(); dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single origin", "http://localhost:3000", []string{"http://localhost:3000"}},
		{"multiple origins", "http://a.example,https://b.example", []string{"http://a.example", "https://b.example"}},
		{"whitespace trimmed", " http://a.example , https://b.example ", []string{"http://a.example", "https://b.example"}},
		{"empty segments dropped", "http://a.example,,", []string{"http://a.example"}},
		{"blank input", "  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitOrigins(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
