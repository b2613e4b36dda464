package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. All of it comes
// from the environment; the secrets have no fallback on purpose.
type Config struct {
	Port           string
	MongoURL       string
	MongoDB        string
	RedisAddr      string
	JwtSecret      []byte
	RazorpayKey    string
	RazorpaySecret string
	UploadDir      string
	PublicBaseURL  string
}

// Load reads .env (if present) and the process environment. Missing
// critical values are fatal: running with an empty signing secret or
// gateway credentials is worse than not running.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "4000"),
		MongoURL:       mustEnv("MONGO_URL"),
		MongoDB:        getEnv("MONGO_DB", "storedb"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		JwtSecret:      []byte(mustEnv("JWT_SECRET")),
		RazorpayKey:    mustEnv("RAZORPAY_KEY"),
		RazorpaySecret: mustEnv("RAZORPAY_SECRET"),
		UploadDir:      getEnv("UPLOAD_DIR", "upload/images"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:4000"),
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s must be set", key)
	}
	return v
}
