package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:           "8082",
		ExportDelivery: "dir",
		ExportDir:      "./exports",
		ExportDelay:    1500 * time.Millisecond,
		AMQPExchange:   "ore",
		AMQPQueue:      "export_events",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "notice delivery needs no directory",
			mutate: func(c *Config) { c.ExportDelivery = "notice"; c.ExportDir = "" },
		},
		{
			name:        "non numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errContains: "invalid port",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errContains: "between 1 and 65535",
		},
		{
			name:        "unknown delivery mode",
			mutate:      func(c *Config) { c.ExportDelivery = "ftp" },
			wantErr:     true,
			errContains: "invalid export delivery",
		},
		{
			name:        "dir delivery without directory",
			mutate:      func(c *Config) { c.ExportDir = "  " },
			wantErr:     true,
			errContains: "export dir",
		},
		{
			name:        "negative delay",
			mutate:      func(c *Config) { c.ExportDelay = -time.Second },
			wantErr:     true,
			errContains: "export delay",
		},
		{
			name:        "amqp url without queue",
			mutate:      func(c *Config) { c.AMQPURL = "amqp://localhost:5672/"; c.AMQPQueue = "" },
			wantErr:     true,
			errContains: "amqp queue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ExportDelivery != "dir" {
		t.Errorf("ExportDelivery = %q", cfg.ExportDelivery)
	}
	if cfg.ExportDelay != 1500*time.Millisecond {
		t.Errorf("ExportDelay = %v", cfg.ExportDelay)
	}
	if cfg.AMQPURL != "" {
		t.Errorf("AMQPURL should default to empty, got %q", cfg.AMQPURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
