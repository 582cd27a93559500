package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Data      DataConfig
	Inventory InventoryConfig
	Notifier  NotifierConfig
	DB        DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
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

// DataConfig rutas de los archivos de entrada y salida.
type DataConfig struct {
	AnalyzedCSV string // dataset analizado (región, mes, sentimiento, riesgo)
	SnapshotCSV string // snapshot de inventario, se sobrescribe en cada guardado
}

// InventoryConfig parámetros de los libros de inventario.
type InventoryConfig struct {
	DefaultWarehouseSize decimal.Decimal // m³, igual para todas las regiones
}

// NotifierConfig webhook de alertas. URL vacía = las alertas solo se registran en el log.
type NotifierConfig struct {
	WebhookURL        string
	Timeout           time.Duration
	RatePerSecond     float64
	Burst             int
	BreakerFailures   int
	BreakerOpenPeriod time.Duration // tiempo con el circuito abierto antes de probar de nuevo
}

// DBConfig configuración de PostgreSQL (sink opcional del snapshot).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	SnapshotEnabled bool
	DatabaseURL     string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	size, err := decimal.NewFromString(getString(v, "INVENTORY_DEFAULT_WAREHOUSE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("config: INVENTORY_DEFAULT_WAREHOUSE_SIZE inválido: %w", err)
	}
	if !size.IsPositive() {
		return nil, fmt.Errorf("config: INVENTORY_DEFAULT_WAREHOUSE_SIZE debe ser mayor que cero")
	}
	rate, err := strconv.ParseFloat(getString(v, "NOTIFIER_RATE_PER_SECOND", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("config: NOTIFIER_RATE_PER_SECOND inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-riesgos"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Data: DataConfig{
			AnalyzedCSV: getString(v, "DATA_ANALYZED_CSV", "analyzed_supply_chain_data.csv"),
			SnapshotCSV: getString(v, "DATA_SNAPSHOT_CSV", "inventory_status.csv"),
		},
		Inventory: InventoryConfig{
			DefaultWarehouseSize: size,
		},
		Notifier: NotifierConfig{
			WebhookURL:        getString(v, "NOTIFIER_WEBHOOK_URL", ""),
			Timeout:           time.Duration(getInt(v, "NOTIFIER_TIMEOUT_SECONDS", 5)) * time.Second,
			RatePerSecond:     rate,
			Burst:             getInt(v, "NOTIFIER_BURST", 1),
			BreakerFailures:   getInt(v, "NOTIFIER_BREAKER_FAILURES", 5),
			BreakerOpenPeriod: time.Duration(getInt(v, "NOTIFIER_BREAKER_OPEN_SECONDS", 30)) * time.Second,
		},
		DB: DBConfig{
			SnapshotEnabled: getBool(v, "DB_SNAPSHOT_ENABLED", false),
			DatabaseURL:     getString(v, "DATABASE_URL", ""),
			Host:            getString(v, "DB_HOST", "localhost"),
			Port:            getInt(v, "DB_PORT", 5432),
			User:            getString(v, "DB_USER", "postgres"),
			Password:        getString(v, "DB_PASSWORD", ""),
			DBName:          getString(v, "DB_NAME", "inventario_riesgos"),
			SSLMode:         getString(v, "DB_SSLMODE", "disable"),
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
