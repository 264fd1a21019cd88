package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Workflow *Workflow
	Redis    *Redis
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Workflow struct {
	HostString     string        `env:"WORKFLOW_SYSTEM_ADDRESS"`
	DagID          string        `env:"WORKFLOW_DAG_ID" envDefault:"order_processing"`
	RequestTimeout time.Duration `env:"WORKFLOW_REQUEST_TIMEOUT" envDefault:"5s"`
	RetryDelay     time.Duration `env:"WORKFLOW_RETRY_DELAY" envDefault:"3s"`
	RetryAttempts  int           `env:"WORKFLOW_RETRY_ATTEMPTS" envDefault:"3"`
	Workers        int           `env:"WORKFLOW_WORKERS" envDefault:"5"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var workflow Workflow
	var redis Redis
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&workflow.HostString, "w", "", "Workflow system address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&workflow)
	if err != nil {
		return nil, fmt.Errorf("error parsing workflow config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Workflow: &workflow,
		Redis:    &redis,
		App:      &app,
	}

	return &config, nil
}
