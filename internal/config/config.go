package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed            int64   `yaml:"seed"`
	RetentionRadius int     `yaml:"retention_radius"`
	RaycastDistance float64 `yaml:"raycast_distance"`
}

type RenderConfig struct {
	Wireframe bool `yaml:"wireframe"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetSeed возвращает сид генерации мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("ENGINE_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1337
}

// GetRetentionRadius возвращает радиус удержания чанков с поддержкой
// fallback значений
func (w *WorldConfig) GetRetentionRadius() int {
	if w.RetentionRadius > 0 {
		return w.RetentionRadius
	}
	if envVal := os.Getenv("ENGINE_RETENTION_RADIUS"); envVal != "" {
		if r, err := strconv.Atoi(envVal); err == nil && r > 0 {
			return r
		}
	}
	return 8
}

// GetRaycastDistance возвращает максимальную дальность выбора блока лучом
func (w *WorldConfig) GetRaycastDistance() float64 {
	if w.RaycastDistance > 0 {
		return w.RaycastDistance
	}
	return 16.0
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(m.Port, "ENGINE_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV ENGINE_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ENGINE_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
