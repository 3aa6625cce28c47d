package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App      *App
		DB       *DB
		HTTP     *HTTP
		Redis    *Redis
		Reminder *Reminder
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	// Reminder holds the warning windows of the reminder engine. A
	// service is due_soon when it is within WarnKM kilometers or
	// WarnDays days of its interval.
	Reminder struct {
		WarnKM   string
		WarnDays string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	reminder := &Reminder{
		WarnKM:   os.Getenv("REMINDER_WARN_KM"),
		WarnDays: os.Getenv("REMINDER_WARN_DAYS"),
	}

	return &Container{
		App:      app,
		DB:       db,
		HTTP:     http,
		Redis:    redis,
		Reminder: reminder,
	}, nil
}

func (r *Reminder) WarnKMInt(fallback int) int {
	if r.WarnKM == "" {
		return fallback
	}
	v, err := strconv.Atoi(r.WarnKM)
	if err != nil {
		return fallback
	}
	return v
}

func (r *Reminder) WarnDaysInt(fallback int) int {
	if r.WarnDays == "" {
		return fallback
	}
	v, err := strconv.Atoi(r.WarnDays)
	if err != nil {
		return fallback
	}
	return v
}
