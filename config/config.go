package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	Minio       Minio
	SMTP        SMTP
	JWTSecret   string
	FrontendURL string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Minio struct {
	Host      string
	Port      string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type SMTP struct {
	Server     string
	Port       int
	Username   string
	Password   string
	SenderName string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_SENDER_NAME", "Zooracle")
	viper.SetDefault("MINIO_BUCKET", "zooracle")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("POSTGRES_HOST")
	config.Database.Port = viper.GetString("POSTGRES_PORT")
	config.Database.User = viper.GetString("POSTGRES_USER")
	config.Database.Password = viper.GetString("POSTGRES_PASSWORD")
	config.Database.Name = viper.GetString("POSTGRES_DB")

	config.Minio.Host = viper.GetString("MINIO_HOST")
	config.Minio.Port = viper.GetString("MINIO_PORT")
	config.Minio.AccessKey = viper.GetString("MINIO_ROOT_USER")
	config.Minio.SecretKey = viper.GetString("MINIO_ROOT_PASSWORD")
	config.Minio.Bucket = viper.GetString("MINIO_BUCKET")
	config.Minio.UseSSL = viper.GetBool("MINIO_USE_SSL")

	config.SMTP.Server = viper.GetString("SMTP_SERVER")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")
	config.SMTP.Username = viper.GetString("SMTP_USERNAME")
	config.SMTP.Password = viper.GetString("SMTP_PASSWORD")
	config.SMTP.SenderName = viper.GetString("SMTP_SENDER_NAME")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.FrontendURL = viper.GetString("FRONTEND_URL")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
