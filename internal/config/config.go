package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	// DeletePIN is the shared confirmation secret required for destructive
	// operations (sale deletion, customer deletion). Always compared
	// server-side.
	DeletePIN string

	Shop ShopConfig

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int
}

// ShopConfig identifies the distributor on receipts and exports.
type ShopConfig struct {
	Name            string
	Address         string
	Phone           string
	DistributorCode string
	GSTIN           string
	FooterNote      string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "gasdesk"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		DeletePIN: getenv("DELETE_PIN", "1234"),

		Shop: ShopConfig{
			Name:            getenv("SHOP_NAME", "Tharayil Bharatgas"),
			Address:         getenv("SHOP_ADDRESS", "Palakkad - Kozhikode Hwy, Makkaraparamba, Kerala 676507"),
			Phone:           getenv("SHOP_PHONE", "+91 9605111444"),
			DistributorCode: getenv("SHOP_DISTRIBUTOR_CODE", "183041"),
			GSTIN:           getenv("SHOP_GSTIN", "32AALFT3265D1ZC"),
			FooterNote:      getenv("SHOP_FOOTER_NOTE", "Goods once sold will not be taken back"),
		},

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "gasdesk"),
		DBUser:            getenv("DATABASE_USER", "gasdesk"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),
	}
}

// Module provides the configuration to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
