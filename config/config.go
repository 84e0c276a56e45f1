package config

import (
	"log"

	"storefront-app/internal/models"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Checkout CheckoutConfig
	Site     models.SiteInfo
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

// CheckoutConfig carries the identifiers and upstream endpoints the order
// composer needs. They are injected explicitly at wiring time rather than
// read from the environment mid-flow.
type CheckoutConfig struct {
	StoreID            string `mapstructure:"store_id"`
	SalesChannelID     string `mapstructure:"sales_channel_id"`
	CouponServiceURL   string `mapstructure:"coupon_service_url"`
	OrderServiceURL    string `mapstructure:"order_service_url"`
	RedisAddr          string `mapstructure:"redis_addr"`
	RedisPassword      string `mapstructure:"redis_password"`
	AddressCatalogPath string `mapstructure:"address_catalog_path"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	// Manually map configuration to struct
	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Checkout: CheckoutConfig{
			StoreID:            viper.GetString("STORE_ID"),
			SalesChannelID:     viper.GetString("SALES_CHANNEL_ID"),
			CouponServiceURL:   viper.GetString("COUPON_SERVICE_URL"),
			OrderServiceURL:    viper.GetString("ORDER_SERVICE_URL"),
			RedisAddr:          viper.GetString("REDIS_ADDR"),
			RedisPassword:      viper.GetString("REDIS_PASSWORD"),
			AddressCatalogPath: viper.GetString("ADDRESS_CATALOG_PATH"),
		},
	}

	// Load TOML Config for Site Info
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: config/config.toml not found, using empty site info: %v", err)
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site info from TOML: %v", err)
		}
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Database Name: %s", AppConfig.Database.Name)
	log.Printf("- Store ID: %s", AppConfig.Checkout.StoreID)
	log.Printf("- Coupon Service: %s", AppConfig.Checkout.CouponServiceURL)
	log.Printf("- Order Service: %s", AppConfig.Checkout.OrderServiceURL)
}
