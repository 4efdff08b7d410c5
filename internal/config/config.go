package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	// Каталог локального key-value хранилища (аналог localStorage браузера)
	Storage struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"storage"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	// Внешний identity-провайдер (dummyjson-совместимый API)
	Identity struct {
		BaseURL       string `yaml:"base_url"`
		ExpiresInMins int    `yaml:"expires_in_mins"`
	} `yaml:"identity"`

	// Начальная загрузка демо-кандидатов с удаленного API
	Seed struct {
		OnStartup bool `yaml:"on_startup"`
		Limit     int  `yaml:"limit"`
	} `yaml:"seed"`
}

var AppConfig *Config

func LoadConfig() {
	// .env опционален; молча пропускаем, если файла нет
	_ = godotenv.Load()

	var cfg Config

	dataDir := os.Getenv("DATA_DIR")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")
	identityURL := os.Getenv("IDENTITY_BASE_URL")

	if dataDir == "" {
		log.Println("Loading configuration from config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Тестовый/контейнерный режим: все из переменных окружения
	log.Println("Loading configuration from environment variables")

	cfg.Storage.DataDir = dataDir
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60
	cfg.Identity.BaseURL = identityURL
	cfg.Identity.ExpiresInMins = 60
	cfg.Seed.Limit = 30

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Identity.BaseURL == "" {
		cfg.Identity.BaseURL = "https://dummyjson.com"
	}
	if cfg.Identity.ExpiresInMins == 0 {
		cfg.Identity.ExpiresInMins = 60
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Seed.Limit == 0 {
		cfg.Seed.Limit = 30
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
