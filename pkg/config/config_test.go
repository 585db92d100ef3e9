package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServiceName != "items-api" {
		t.Errorf("ServiceName: got %q, want %q", cfg.ServiceName, "items-api")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port: got %d, want 8080", cfg.Port)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment: got %q, want %q", cfg.Environment, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "custom-api")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServiceName != "custom-api" {
		t.Errorf("ServiceName: got %q, want custom-api", cfg.ServiceName)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port: got %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_RejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Port: 8080}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr: got %q, want :8080", cfg.Addr())
	}
}

func TestValidateForProduction_NonProductionNoOps(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, Debug: true, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Errorf("expected nil for development, got %v", err)
	}
}

func TestValidateForProduction_RejectsDebug(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, Debug: true, LogLevel: "info"}
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error when DEBUG is enabled in production")
	}
}

func TestValidateForProduction_RejectsDebugLogLevel(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error when LOG_LEVEL=debug in production")
	}
}

func TestValidateForProduction_AcceptsSafeConfig(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, LogLevel: "info"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Errorf("expected nil for safe production config, got %v", err)
	}
}
