package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Auth       AuthConfig
	Map        MapConfig
	Summarizer SummarizerConfig
	Worker     WorkerConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
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
	SummaryCacheTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// MapConfig - начальное состояние виджета карты
type MapConfig struct {
	CenterLat    float64
	CenterLon    float64
	Zoom         int
	DefaultTheme string
}

type SummarizerConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	RequestTimeout time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxBatchSize  int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
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
			SummaryCacheTTL: time.Duration(viper.GetInt("SUMMARY_CACHE_TTL")) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("AUTH_JWT_SECRET"),
			Issuer:    viper.GetString("AUTH_ISSUER"),
			TokenTTL:  time.Duration(viper.GetInt("AUTH_TOKEN_TTL")) * time.Second,
		},
		Map: MapConfig{
			CenterLat:    viper.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:    viper.GetFloat64("MAP_CENTER_LON"),
			Zoom:         viper.GetInt("MAP_ZOOM"),
			DefaultTheme: viper.GetString("MAP_DEFAULT_THEME"),
		},
		Summarizer: SummarizerConfig{
			BaseURL:        viper.GetString("SUMMARIZER_BASE_URL"),
			APIKey:         viper.GetString("SUMMARIZER_API_KEY"),
			Model:          viper.GetString("SUMMARIZER_MODEL"),
			RequestTimeout: time.Duration(viper.GetInt("SUMMARIZER_TIMEOUT")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxBatchSize:  viper.GetInt("WORKER_MAX_BATCH_SIZE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "accessibility-map"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Cache.SummaryCacheTTL == 0 {
		cfg.Cache.SummaryCacheTTL = 5 * time.Minute
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		// Delhi by default
		cfg.Map.CenterLat = 28.6139
		cfg.Map.CenterLon = 77.2090
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 12
	}
	if cfg.Map.DefaultTheme == "" {
		cfg.Map.DefaultTheme = "light"
	}
	if cfg.Summarizer.BaseURL == "" {
		cfg.Summarizer.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Summarizer.Model == "" {
		cfg.Summarizer.Model = "gemini-2.0-flash"
	}
	if cfg.Summarizer.RequestTimeout == 0 {
		cfg.Summarizer.RequestTimeout = 30 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "point-feed-workers"
	}
	if cfg.Worker.MaxBatchSize == 0 {
		cfg.Worker.MaxBatchSize = 20
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
