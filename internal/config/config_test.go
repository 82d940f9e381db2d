package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "false")
	t.Setenv("TYPED_DURATION", "90s")
	t.Setenv("TYPED_BAD", "nope")

	if got := GetEnvAsType("TYPED_INT", 1); got != 42 {
		t.Errorf("int = %d, expected 42", got)
	}
	if got := GetEnvAsType("TYPED_BOOL", true); got {
		t.Errorf("bool = %v, expected false", got)
	}
	if got := GetEnvAsType("TYPED_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("duration = %v, expected 90s", got)
	}
	if got := GetEnvAsType("TYPED_BAD", 7); got != 7 {
		t.Errorf("invalid int = %d, expected default 7", got)
	}
	if got := GetEnvAsType("TYPED_BAD", 5*time.Minute); got != 5*time.Minute {
		t.Errorf("invalid duration = %v, expected default 5m", got)
	}
	if got := GetEnvAsType("TYPED_MISSING", "fallback"); got != "fallback" {
		t.Errorf("missing string = %s, expected fallback", got)
	}
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "LOG_LEVEL", "DATABASE_URL", "DB_DRIVER", "DB_PATH",
		"REDIS_ADDR", "KAFKA_BROKERS", "IDEMPOTENCY_TTL", "COMMIT_TIMEOUT", "SEED_ON_START",
		"DB_MAX_OPEN_CONNS", "INITIAL_STOCK",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
		os.Setenv("IDEMPOTENCY_TTL", "1h")
		os.Setenv("COMMIT_TIMEOUT", "3s")
		os.Setenv("SEED_ON_START", "false")
		os.Setenv("DB_MAX_OPEN_CONNS", "40")
		os.Setenv("INITIAL_STOCK", "7")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %s, expected localhost:6379", config.RedisAddr)
		}
		if len(config.KafkaBrokers) != 2 || config.KafkaBrokers[1] != "kafka-2:9092" {
			t.Errorf("KafkaBrokers = %v, expected two brokers", config.KafkaBrokers)
		}
		if config.IdempotencyTTL != time.Hour {
			t.Errorf("IdempotencyTTL = %v, expected 1h", config.IdempotencyTTL)
		}
		if config.CommitTimeout != 3*time.Second {
			t.Errorf("CommitTimeout = %v, expected 3s", config.CommitTimeout)
		}
		if config.SeedOnStart {
			t.Error("SeedOnStart should be false")
		}
		if config.Database().MaxOpenConns != 40 {
			t.Errorf("MaxOpenConns = %d, expected 40", config.Database().MaxOpenConns)
		}
		if config.InitialStock != 7 {
			t.Errorf("InitialStock = %d, expected 7", config.InitialStock)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with out of range port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "70000")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is out of range")
		}
	})

	t.Run("should fail with malformed database url", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DATABASE_URL", "not a url")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DATABASE_URL is malformed")
		}
	})

	t.Run("database url selects postgres", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DATABASE_URL", "postgres://pizza:secret@db:5432/pizza?sslmode=disable")
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		dbConfig := config.Database()
		if dbConfig.DSN() != config.DatabaseURL {
			t.Errorf("DSN = %s, expected the database url", dbConfig.DSN())
		}
		if strings.Contains(config.String(), "secret") {
			t.Errorf("String() leaks the database password: %s", config.String())
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.RedisAddr != "" || len(config.KafkaBrokers) != 0 {
			t.Error("Redis and Kafka should be disabled by default")
		}
		if config.IdempotencyTTL != 24*time.Hour {
			t.Errorf("IdempotencyTTL = %v, expected default 24h", config.IdempotencyTTL)
		}
		if !config.SeedOnStart {
			t.Error("SeedOnStart should default to true")
		}
		if config.InitialStock != 20 {
			t.Errorf("InitialStock = %d, expected default 20", config.InitialStock)
		}
	})
}

func TestLevelForEnvironment(t *testing.T) {
	cases := map[string]logrus.Level{
		"development": logrus.DebugLevel,
		"production":  logrus.ErrorLevel,
		"staging":     logrus.InfoLevel,
	}
	for env, want := range cases {
		if got := LevelForEnvironment(env); got != want {
			t.Errorf("LevelForEnvironment(%q) = %v, expected %v", env, got, want)
		}
	}
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
