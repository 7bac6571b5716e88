package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Export delivery
	ExportDelivery string // "dir" writes files, "notice" only reports
	ExportDir      string
	ExportDelay    time.Duration

	// AMQP (optional; empty URL disables event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		ExportDelivery: getEnv("EXPORT_DELIVERY", "dir"),
		ExportDir:      getEnv("EXPORT_DIR", "./exports"),
		ExportDelay:    getEnvDuration("EXPORT_DELAY", 1500*time.Millisecond),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "ore"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "export_events"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.ExportDelivery {
	case "dir", "notice":
	default:
		errs = append(errs, fmt.Sprintf("invalid export delivery '%s': must be 'dir' or 'notice'", c.ExportDelivery))
	}

	if c.ExportDelivery == "dir" && strings.TrimSpace(c.ExportDir) == "" {
		errs = append(errs, "export dir must be set when export delivery is 'dir'")
	}

	if c.ExportDelay < 0 {
		errs = append(errs, "export delay must not be negative")
	}

	if c.AMQPURL != "" {
		if strings.TrimSpace(c.AMQPExchange) == "" {
			errs = append(errs, "amqp exchange must be set when amqp url is configured")
		}
		if strings.TrimSpace(c.AMQPQueue) == "" {
			errs = append(errs, "amqp queue must be set when amqp url is configured")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
