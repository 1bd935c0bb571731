// Package config loads puzzle configuration from files, .env files and the
// environment.
//
// It uses Viper for YAML, JSON and TOML files and godotenv for .env files.
// Environment variables with the PUZZLE_ prefix override file values, with
// underscores mapping onto nested keys:
//
//	PUZZLE_CLIENT_HOST=127.0.0.1   ->  client.host
//	PUZZLE_LOGGING_LEVEL=debug     ->  logging.level
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("puzzle", &cfg, config.WithConfigFile(path))
package config
