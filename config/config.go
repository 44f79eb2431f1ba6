package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	PassengerListName string
	DriverListName    string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "ridebook"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))

	cfg.PassengerListName = cast.ToString(getOrReturnDefault("PASSENGER_LIST_NAME", "Passengers List"))
	cfg.DriverListName = cast.ToString(getOrReturnDefault("DRIVER_LIST_NAME", "Drivers List"))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
