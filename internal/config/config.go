package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env   string `env:"ENV" env-required:"true"`
	HTTP  HTTPConfig
	Store StoreConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// StoreConfig holds the DynamoDB connection target and table names.
// None of the fields are required at boot: handlers validate them on
// every request and report a missing value as an internal error, so a
// misconfigured deployment answers requests instead of crash-looping.
type StoreConfig struct {
	Region        string `env:"AWS_REGION"`
	ProjectsTable string `env:"DYNAMODB_PROJECTS_TABLE_NAME"`
	TasksTable    string `env:"DYNAMODB_TASKS_TABLE_NAME"`
}
