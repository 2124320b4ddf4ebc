// config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type APIConfig struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	API      APIConfig      `yaml:"api"`
}

var AppConfig Config

// LoadConfig reads the YAML config file into AppConfig. Database credentials
// can be overridden through a .env file (or the process environment) so they
// never have to live in the committed config file.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(file, &AppConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("DB_USER"); v != "" {
		AppConfig.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		AppConfig.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		AppConfig.Database.DBName = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		AppConfig.Database.Host = v
	}

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8000"
	}
	if AppConfig.API.Title == "" {
		AppConfig.API.Title = "Lok Sabha Database API"
	}
	if AppConfig.API.Version == "" {
		AppConfig.API.Version = "1.0.0"
	}

	return nil
}
