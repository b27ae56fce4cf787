package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

type Config struct {
	LogLevel     string           `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string           `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort   string           `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis        Redis            `yaml:"redis"`
	CountriesAPI CountriesAPI     `yaml:"countries-api"`
	Quiz         Quiz             `yaml:"quiz"`
	Catalog      []entity.Country `yaml:"catalog"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type CountriesAPI struct {
	BaseURL string        `yaml:"base-url" env:"COUNTRIES_API_URL" env-default:"https://restcountries.com/v3.1"`
	Timeout time.Duration `yaml:"timeout" env:"COUNTRIES_API_TIMEOUT" env-default:"5s"`
}

type Quiz struct {
	HintCacheTTL time.Duration `yaml:"hint-cache-ttl" env:"HINT_CACHE_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetCatalog returns the configured countries, falling back to the bundled world map.
func (that *Config) GetCatalog() (*entity.Catalog, error) {
	countries := that.Catalog
	if len(countries) == 0 {
		countries = entity.DefaultCatalog
	}

	catalog, err := entity.NewCatalog(countries)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return catalog, nil
}
