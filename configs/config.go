package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the server configuration, read once at startup.
type Config struct {
	Port       string
	MongoURI   string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	AssetsDir  string
	BcryptCost int
}

// Load reads a .env overlay (values in the file win over the inherited
// environment) and builds the config. Missing MONGO_URI or JWT_SECRET is
// fatal.
func Load() Config {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:       getenv("PORT", "6001"),
		MongoURI:   os.Getenv("MONGO_URI"),
		DBName:     getenv("DB_NAME", "whats_cookin"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   getduration("TOKEN_TTL", 72*time.Hour),
		AssetsDir:  getenv("ASSETS_DIR", "public/assets"),
		BcryptCost: getint("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set in environment")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default", key, os.Getenv(key))
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using default", key, os.Getenv(key))
	}
	return fallback
}
