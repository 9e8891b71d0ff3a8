package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Local   LocalAuthConfig
	Session SessionConfig
	Images  ImageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	LoginRateLimit int // intentos de login por minuto y por IP
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig API REST de Comandas detrás del proxy.
type BackendConfig struct {
	BaseURL string // siempre termina en "/"
	Timeout time.Duration
}

// LocalAuthConfig credencial local ("@usuario"). Username vacío = deshabilitada.
type LocalAuthConfig struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt; tiene prioridad sobre Password
}

// SessionConfig cookie y expiración por inactividad de la sesión.
type SessionConfig struct {
	CookieName  string
	Idle        time.Duration
	Secure      bool
	// DatabaseURL PostgreSQL para compartir sesiones entre instancias; vacío = memoria.
	DatabaseURL string
}

// ImageConfig normalización de fotos de productos.
type ImageConfig struct {
	MaxSide int // lado mayor en píxeles
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Un .env en el directorio actual se carga primero con godotenv.
func Load() (*Config, error) {
	// godotenv no pisa variables ya definidas en el entorno.
	_ = godotenv.Load()

	v := viper.New()

	// Opcional: config.env
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:         v.GetString("APP_ENV"),
			Name:        v.GetString("APP_NAME"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			SwaggerFile: v.GetString("SWAGGER_FILE"),
		},
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           getInt(v, "HTTP_PORT"),
			LoginRateLimit: getInt(v, "LOGIN_RATE_LIMIT"),
		},
		Backend: BackendConfig{
			BaseURL: v.GetString("PROXY_BASE_URL"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Local: LocalAuthConfig{
			Username:     v.GetString("LOCAL_USERNAME"),
			Password:     v.GetString("LOCAL_PASSWORD"),
			PasswordHash: v.GetString("LOCAL_PASSWORD_HASH"),
		},
		Session: SessionConfig{
			CookieName:  v.GetString("SESSION_COOKIE"),
			Idle:        time.Duration(getInt(v, "SESSION_IDLE_MINUTES")) * time.Minute,
			Secure:      v.GetBool("SESSION_SECURE"),
			DatabaseURL: v.GetString("SESSION_DATABASE_URL"),
		},
		Images: ImageConfig{
			MaxSide: getInt(v, "IMAGE_MAX_SIDE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "comandas-web")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SWAGGER_FILE", "./docs/swagger.json")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_COOKIE", "comandas_session")
	v.SetDefault("SESSION_IDLE_MINUTES", 30)
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("IMAGE_MAX_SIDE", 800)
}

func (c *Config) validate() error {
	c.Backend.BaseURL = strings.TrimSpace(c.Backend.BaseURL)
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: PROXY_BASE_URL es obligatorio")
	}
	if !strings.HasSuffix(c.Backend.BaseURL, "/") {
		c.Backend.BaseURL += "/"
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT inválido: %d", c.HTTP.Port)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT_SECONDS debe ser positivo")
	}
	if c.Session.Idle <= 0 {
		return fmt.Errorf("config: SESSION_IDLE_MINUTES debe ser positivo")
	}
	if c.HTTP.LoginRateLimit <= 0 {
		c.HTTP.LoginRateLimit = 10
	}
	if c.Images.MaxSide <= 0 {
		c.Images.MaxSide = 800
	}
	return nil
}

// getInt tolera valores numéricos escritos como texto en archivos .env.
func getInt(v *viper.Viper, key string) int {
	switch val := v.Get(key).(type) {
	case int:
		return val
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(val))
		return n
	default:
		return v.GetInt(key)
	}
}
