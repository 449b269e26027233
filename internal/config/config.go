package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration

	// Collection names. Content collections are authored out-of-band;
	// the messages collection is created at startup when missing.
	MessagesCollection       string
	TestimonialsCollection   string
	SuccessStoriesCollection string
	FAQCollection            string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "pixelperfect")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("MESSAGES_COLLECTION", "messages")
	viper.SetDefault("TESTIMONIALS_COLLECTION", "clientsResponse")
	viper.SetDefault("SUCCESS_STORIES_COLLECTION", "successStories")
	viper.SetDefault("FAQ_COLLECTION", "askedQuestions")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("CACHE_TTL_SECONDS", 30)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:                      viper.GetString("MONGODB_URI"),
			Database:                 viper.GetString("MONGODB_DATABASE"),
			Timeout:                  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
			MessagesCollection:       viper.GetString("MESSAGES_COLLECTION"),
			TestimonialsCollection:   viper.GetString("TESTIMONIALS_COLLECTION"),
			SuccessStoriesCollection: viper.GetString("SUCCESS_STORIES_COLLECTION"),
			FAQCollection:            viper.GetString("FAQ_COLLECTION"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
		},
		Cache: CacheConfig{
			TTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
	}

	return cfg, nil
}
