package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment
// and an optional .env file.
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`
	LogLevel string `mapstructure:"log_level"`

	DatabaseDriver   string `mapstructure:"database_driver"`
	DatabaseUsername string `mapstructure:"database_username"`
	DatabasePassword string `mapstructure:"database_password"`
	DatabaseHost     string `mapstructure:"database_host"`
	DatabasePort     string `mapstructure:"database_port"`
	DatabaseName     string `mapstructure:"database_name"`

	ResendAPIKey string `mapstructure:"resend_api_key"`
	EmailFrom    string `mapstructure:"email_from"`
	EmailTo      string `mapstructure:"email_to"`

	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	SMSPhoneNumber     string `mapstructure:"sms_phone_number"`
	SMSSenderID        string `mapstructure:"sms_sender_id"`
}

type DatabaseConfig struct {
	Driver   string
	Username string
	Password string
	Host     string
	Port     string
	Database string
}

func (dconf *DatabaseConfig) GetURI() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s",
		dconf.Driver,
		dconf.Username,
		dconf.Password,
		dconf.Host,
		dconf.Port,
		dconf.Database,
	)
}

func (c *Config) Database() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:   c.DatabaseDriver,
		Username: c.DatabaseUsername,
		Password: c.DatabasePassword,
		Host:     c.DatabaseHost,
		Port:     c.DatabasePort,
		Database: c.DatabaseName,
	}
}

// Load reads configuration from environment variables and the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Every unmarshalled key needs a default: AutomaticEnv only resolves
	// keys viper already knows about.
	v.SetDefault("http_addr", ":8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("database_driver", "postgres")
	v.SetDefault("database_username", "admin")
	v.SetDefault("database_password", "admin")
	v.SetDefault("database_host", "postgres")
	v.SetDefault("database_port", "5432")
	v.SetDefault("database_name", "postgres")
	v.SetDefault("resend_api_key", "")
	v.SetDefault("email_from", "noreply@deadpartymedia.com")
	v.SetDefault("email_to", "booking@deadpartymedia.com")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("sms_phone_number", "")
	v.SetDefault("sms_sender_id", "DeadParty")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
