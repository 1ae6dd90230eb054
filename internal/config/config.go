// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env"`
	StorageDriver           string `yaml:"storage_driver" env-default:"postgres"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	Firestore               `yaml:"firestore"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Generator               `yaml:"generator"`
}

// Firestore структура для настройки подключения к Firestore,
// используется при storage_driver: firestore
type Firestore struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Generator структура для настройки клиента генерации планов питания
type Generator struct {
	APIKey          string        `yaml:"api_key" env:"GENERATOR_API_KEY"`
	BaseURL         string        `yaml:"base_url" env-default:"https://api.openai.com"`
	Model           string        `yaml:"model" env-default:"gpt-4"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" env-default:"60s"`
}

// MustLoad функция для загрузки конфига, возвращает конфиг, сгенерированный из config/config.go
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.StorageDriver != "postgres" && cfg.StorageDriver != "firestore" {
		log.Fatalf("unknown storage driver: %s", cfg.StorageDriver)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageDriver: %s\n"+
			"StorageConnectionString: %s\n"+
			"Firestore:\n"+
			"  ProjectID: %s\n"+
			"  CredentialsFile: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Generator:\n"+
			"  BaseURL: %s\n"+
			"  Model: %s\n"+
			"  GenerateTimeout: %s\n",
		c.Env,
		c.StorageDriver,
		c.StorageConnectionString,
		c.ProjectID,
		c.CredentialsFile,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.BaseURL,
		c.Model,
		c.GenerateTimeout,
	)
}
