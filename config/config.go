package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
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

// ScheduleConfig is the deployment-wide fallback working day applied
// to weekdays a doctor has no explicit schedule entry for. Leaving
// start/end empty disables the fallback: days without an entry then
// offer no slots.
type ScheduleConfig struct {
	DefaultStart      string
	DefaultEnd        string
	DefaultBreakStart string
	DefaultBreakEnd   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("DB_MIGRATIONS_DIR", "db/migrations")
	viper.SetDefault("SCHEDULE_DEFAULT_START", "09:00")
	viper.SetDefault("SCHEDULE_DEFAULT_END", "17:00")
	viper.SetDefault("SCHEDULE_DEFAULT_BREAK_START", "12:00")
	viper.SetDefault("SCHEDULE_DEFAULT_BREAK_END", "13:00")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
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
		Schedule: ScheduleConfig{
			DefaultStart:      viper.GetString("SCHEDULE_DEFAULT_START"),
			DefaultEnd:        viper.GetString("SCHEDULE_DEFAULT_END"),
			DefaultBreakStart: viper.GetString("SCHEDULE_DEFAULT_BREAK_START"),
			DefaultBreakEnd:   viper.GetString("SCHEDULE_DEFAULT_BREAK_END"),
		},
	}

	return config, nil
}
