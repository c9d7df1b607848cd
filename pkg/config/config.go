package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Seed SeedConfig
	Docs DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeedConfig datos de demostración cargados al iniciar.
type SeedConfig struct {
	Count  int    // cantidad de categorías iniciales
	Random uint64 // semilla aleatoria; 0 = no determinista
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	Path string // ruta al swagger.json; vacío desactiva /docs
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SEED_COUNT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
		},
		Docs: DocsConfig{
			Path: v.GetString("DOCS_PATH"),
		},
	}

	var err error
	if cfg.HTTP.Port, err = getInt(v, "HTTP_PORT"); err != nil {
		return nil, err
	}
	if cfg.Seed.Count, err = getInt(v, "SEED_COUNT"); err != nil {
		return nil, err
	}
	if cfg.Seed.Count < 0 {
		return nil, fmt.Errorf("config: SEED_COUNT no puede ser negativo (%d)", cfg.Seed.Count)
	}
	seed := strings.TrimSpace(v.GetString("SEED_RANDOM"))
	if cfg.Seed.Random, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, fmt.Errorf("config: SEED_RANDOM inválido %q: %w", seed, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "category-admin")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("SEED_COUNT", 11)
	v.SetDefault("SEED_RANDOM", "0")
	v.SetDefault("DOCS_PATH", "./docs/swagger.json")
}

// getInt acepta enteros y strings numéricos (los valores de env llegan como string).
func getInt(v *viper.Viper, key string) (int, error) {
	switch val := v.Get(key).(type) {
	case int:
		return val, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido %q: %w", key, val, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
