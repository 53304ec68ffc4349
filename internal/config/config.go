package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Geoapify GeoapifyConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Listings ListingsConfig
	Worker   WorkerConfig
	Log      LogConfig
	Campuses []CampusConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type GeoapifyConfig struct {
	// APIKey may be empty: routing and places calls then degrade to
	// "unavailable" instead of failing startup.
	APIKey           string
	RoutingBaseURL   string
	PlacesBaseURL    string
	RequestTimeout   int
	StopSearchRadius float64
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// Backend selects the TravelCache implementation: "memory" or "redis".
	Backend string
	// TravelCacheTTL applies to the redis backend only; 0 means no expiry.
	TravelCacheTTL time.Duration
}

type ListingsConfig struct {
	// Backend selects the listing store: "static" or "postgres".
	Backend string
}

type WorkerConfig struct {
	Enabled bool
	// PrewarmInterval is the pause between cache prewarm sweeps.
	PrewarmInterval time.Duration
}

type LogConfig struct {
	Level string
}

type CampusConfig struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional - environment variables may supply everything
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Geoapify: GeoapifyConfig{
			APIKey:           viper.GetString("GEOAPIFY_API_KEY"),
			RoutingBaseURL:   viper.GetString("GEOAPIFY_ROUTING_URL"),
			PlacesBaseURL:    viper.GetString("GEOAPIFY_PLACES_URL"),
			RequestTimeout:   viper.GetInt("GEOAPIFY_REQUEST_TIMEOUT"),
			StopSearchRadius: viper.GetFloat64("GEOAPIFY_STOP_RADIUS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Backend:        viper.GetString("CACHE_BACKEND"),
			TravelCacheTTL: time.Duration(viper.GetInt("TRAVEL_CACHE_TTL")) * time.Second,
		},
		Listings: ListingsConfig{
			Backend: viper.GetString("LISTINGS_BACKEND"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			PrewarmInterval: time.Duration(viper.GetInt("WORKER_PREWARM_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Geoapify.RoutingBaseURL == "" {
		cfg.Geoapify.RoutingBaseURL = "https://api.geoapify.com/v1/routing"
	}
	if cfg.Geoapify.PlacesBaseURL == "" {
		cfg.Geoapify.PlacesBaseURL = "https://api.geoapify.com/v2/places"
	}
	if cfg.Geoapify.RequestTimeout == 0 {
		cfg.Geoapify.RequestTimeout = 10
	}
	if cfg.Geoapify.StopSearchRadius == 0 {
		cfg.Geoapify.StopSearchRadius = 800
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Listings.Backend == "" {
		cfg.Listings.Backend = "static"
	}
	if cfg.Worker.PrewarmInterval == 0 {
		cfg.Worker.PrewarmInterval = 15 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	cfg.Campuses = defaultCampuses()

	return cfg, nil
}

// defaultCampuses возвращает фиксированный набор кампусов с координатами
func defaultCampuses() []CampusConfig {
	return []CampusConfig{
		{ID: "keele", Name: "Keele Campus", Lat: 43.7735, Lng: -79.5019},
		{ID: "markham", Name: "Markham Campus", Lat: 43.8486, Lng: -79.3360},
		{ID: "glendon", Name: "Glendon Campus", Lat: 43.7279, Lng: -79.3789},
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
