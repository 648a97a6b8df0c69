package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Upload UploadConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	SiteURL string // base pública del portal, para enlaces absolutos (feed RSS)
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI      string // mongodb://host:port
	Database string
	// Timeout de selección de servidor en segundos: fallar rápido si Mongo no responde.
	SelectTimeoutSeconds int
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos; por defecto 7 días como en el flujo de login
	Issuer     string
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

// UploadConfig configuración del almacén de archivos subidos.
type UploadConfig struct {
	Dir        string // directorio en disco
	PublicPath string // prefijo público bajo el que se sirven (/uploads)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGO_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "museum-portal"),
			SiteURL: getString(v, "APP_SITE_URL", "http://localhost:5000"),
		},
		Mongo: MongoConfig{
			URI:                  getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database:             getString(v, "MONGO_DATABASE", "manipur_museum"),
			SelectTimeoutSeconds: getInt(v, "MONGO_SELECT_TIMEOUT_SECONDS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "museum_secret_key"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60),
			Issuer:     getString(v, "JWT_ISSUER", "museum-portal"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Upload: UploadConfig{
			Dir:        getString(v, "UPLOAD_DIR", "uploads"),
			PublicPath: getString(v, "UPLOAD_PUBLIC_PATH", "/uploads"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
