package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString renders the pgx connection URL for this database.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed          int     `mapstructure:"seed"`
	CityName      string  `mapstructure:"city_name"`
	CityLat       float64 `mapstructure:"city_latitude"`
	CityLng       float64 `mapstructure:"city_longitude"`
	UrbanRadius   float64 `mapstructure:"urban_radius"`
	InitialVenues int     `mapstructure:"initial_venues"`
	Day           string  `mapstructure:"day"`

	Continuous         bool          `mapstructure:"continuous"`
	CollectionInterval time.Duration `mapstructure:"collection_interval"`

	OutputFormat      string `mapstructure:"output_format"`
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	PostgresEnabled bool               `mapstructure:"postgres_enabled"`
	Database        DatabaseConfig     `mapstructure:"database"`
	CloudStorage    CloudStorageConfig `mapstructure:"cloud_storage"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("city_name", "Venice")
	viper.SetDefault("city_latitude", 45.4333)
	viper.SetDefault("city_longitude", 12.3378)
	viper.SetDefault("urban_radius", 3.0)
	viper.SetDefault("initial_venues", 50)
	viper.SetDefault("collection_interval", "1h")
	viper.SetDefault("output_destination", "local")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
