package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	BcryptCost int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret          string
	Expiry          time.Duration
	CookieName      string
	CookieSecure    bool
	FlashCookieName string
	FlashExpiry     time.Duration
}

// IsDevelopment reports whether the app runs with APP_ENV=development.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig reads the optional .env file and the process environment.
// DB_* keys fall back to the RDS_* names used by the hosted deployment.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_EXPIRY", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "hms_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("FLASH_COOKIE_NAME", "hms_flash")
	v.SetDefault("FLASH_EXPIRY", "10m")

	_ = v.BindEnv("DB_HOST", "DB_HOST", "RDS_HOSTNAME")
	_ = v.BindEnv("DB_PORT", "DB_PORT", "RDS_PORT")
	_ = v.BindEnv("DB_USER", "DB_USER", "RDS_USERNAME")
	_ = v.BindEnv("DB_PASSWORD", "DB_PASSWORD", "RDS_PASSWORD")
	_ = v.BindEnv("DB_NAME", "DB_NAME", "RDS_DB_NAME")

	// A missing .env is fine, the environment alone may carry everything.
	_ = v.ReadInConfig()

	sessionExpiry, err := time.ParseDuration(v.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	flashExpiry, err := time.ParseDuration(v.GetString("FLASH_EXPIRY"))
	if err != nil {
		flashExpiry = 10 * time.Minute
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		connMaxLifetime = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),

			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:          v.GetString("SESSION_SECRET"),
			Expiry:          sessionExpiry,
			CookieName:      v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:    v.GetBool("SESSION_COOKIE_SECURE"),
			FlashCookieName: v.GetString("FLASH_COOKIE_NAME"),
			FlashExpiry:     flashExpiry,
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DB.Host == "" {
		errs = append(errs, errors.New("DB_HOST (or RDS_HOSTNAME) is required"))
	}
	if c.DB.User == "" {
		errs = append(errs, errors.New("DB_USER (or RDS_USERNAME) is required"))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME (or RDS_DB_NAME) is required"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	return errors.Join(errs...)
}
