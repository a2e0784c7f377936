package config

import (
	"time"

	"github.com/spf13/viper"
)

// StoreBackend selects which entity store implementation backs the
// process, decided once at startup.
type StoreBackend string

const (
	StoreBackendMemory StoreBackend = "memory" // process-lifetime in-memory store
	StoreBackendSQLite StoreBackend = "sqlite" // relational store on sqlite
)

const DefaultDatabasePath = "./bookshelf.db"

type (
	Config struct {
		HTTP
		Store
		UI
		ViewCache
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Store struct {
		Backend      StoreBackend
		DatabasePath string
	}
	UI struct {
		TemplatesPath string
	}
	ViewCache struct {
		Enabled bool
		TTL     time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("store_backend", string(StoreBackendSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("view_cache_enabled", true)
	v.SetDefault("view_cache_ttl", "5m")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Store: Store{
			Backend:      StoreBackend(v.GetString("STORE_BACKEND")),
			DatabasePath: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
		},
		ViewCache: ViewCache{
			Enabled: v.GetBool("VIEW_CACHE_ENABLED"),
			TTL:     v.GetDuration("VIEW_CACHE_TTL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
