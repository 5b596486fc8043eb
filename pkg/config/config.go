package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Session struct {
	CookieName string        `envconfig:"COOKIE_NAME" default:"bitpro_session"`
	Expiry     time.Duration `envconfig:"EXPIRY" default:"24h"`
	Secure     bool          `envconfig:"SECURE" default:"false"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"text"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	DB        DB        `envconfig:"DATABASE"`
	Server    Server    `envconfig:"SERVER"`
	Session   Session   `envconfig:"SESSION"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Log       Log       `envconfig:"LOG"`
}
