package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the development fallback used when no secret is
// configured. Anything deployed for real must set TODO_AUTH_JWTSECRET.
const DefaultJWTSecret = "default_secret"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Driver string
		Path   string
	}
	Auth struct {
		JWTSecret     string
		TokenTTLHours int
	}
	Seed struct {
		Name     string
		Email    string
		Password string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.driver", "memory")
	v.SetDefault("database.path", "data/todo.db")
	v.SetDefault("auth.jwtsecret", DefaultJWTSecret)
	v.SetDefault("auth.tokenttlhours", 24)
	v.SetDefault("seed.name", "drian")
	v.SetDefault("seed.email", "drian@example.com")
	v.SetDefault("seed.password", "12345678")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Database.Driver {
	case "memory", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// UsingDefaultSecret reports whether the insecure development secret is in use.
func (c Config) UsingDefaultSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
