package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Booking BookingConfig
	Portal  PortalConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type AuthConfig struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
}

type BookingConfig struct {
	SlotCapacity int
}

type PortalConfig struct {
	// BaseURL is the public origin used to build certificate verification links.
	BaseURL           string
	CertificateIssuer string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		// The access token window doubles as the server-side session window.
		accessExpiry = 1 * time.Hour
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	lockoutDuration, err := time.ParseDuration(viper.GetString("AUTH_LOCKOUT_DURATION"))
	if err != nil {
		lockoutDuration = 30 * time.Minute
	}

	maxAttempts := viper.GetInt("AUTH_MAX_LOGIN_ATTEMPTS")
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	slotCapacity := viper.GetInt("BOOKING_SLOT_CAPACITY")
	if slotCapacity <= 0 {
		slotCapacity = 3
	}

	issuer := viper.GetString("PORTAL_CERTIFICATE_ISSUER")
	if issuer == "" {
		issuer = "Municipal Rural Health Unit"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Auth: AuthConfig{
			MaxLoginAttempts: maxAttempts,
			LockoutDuration:  lockoutDuration,
		},
		Booking: BookingConfig{
			SlotCapacity: slotCapacity,
		},
		Portal: PortalConfig{
			BaseURL:           viper.GetString("PORTAL_BASE_URL"),
			CertificateIssuer: issuer,
		},
	}

	return config, nil
}
