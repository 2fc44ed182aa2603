package config

import (
	"log"

	"github.com/spf13/viper"

	"overture/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDiaryDB  int    `mapstructure:"REDIS_DIARY_DB"`
	RedisTariffDB int    `mapstructure:"REDIS_TARIFF_DB"`
}

var AppConfig Config

// roomRates holds the small-room rate table loaded from configuration.
var roomRates models.RateTable

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DIARY_DB", 0)
	viper.SetDefault("REDIS_TARIFF_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "overture")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loadRoomRates()
}

// loadRoomRates reads the "room_rates" section of the config file, falling
// back to the house tariff for any room the file does not mention.
func loadRoomRates() {
	roomRates = DefaultRoomRates()
	if !viper.IsSet("room_rates") {
		return
	}
	configured := models.RateTable{}
	if err := viper.UnmarshalKey("room_rates", &configured); err != nil {
		log.Fatalf("Failed to load room rate table: %v", err)
	}
	for room, rates := range configured {
		roomRates[room] = rates
	}
}

// RoomRateTable returns the rate table for the six bookable rooms.
func RoomRateTable() models.RateTable {
	if roomRates == nil {
		roomRates = DefaultRoomRates()
	}
	return roomRates
}

// DefaultRoomRates is the house tariff used when no rate table is configured.
func DefaultRoomRates() models.RateTable {
	return models.RateTable{
		"Green Room":       {Hourly: 25, MorningAfternoon: 75, AllDay: 130, Week: 600},
		"Bronte Boardroom": {Hourly: 40, MorningAfternoon: 120, AllDay: 200, Week: 900},
		"Dickens Den":      {Hourly: 40, MorningAfternoon: 75, AllDay: 130, Week: 500},
		"Poe Parlor":       {Hourly: 35, MorningAfternoon: 100, AllDay: 160, Week: 700},
		"Globe Room":       {Hourly: 50, MorningAfternoon: 150, AllDay: 250, Week: 1100},
		"Chekhov Chamber":  {Hourly: 40, MorningAfternoon: 110, AllDay: 160, Week: 850},
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
