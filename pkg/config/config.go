package config

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/amiskov/folio/pkg/tokenstore"
)

const (
	TokenStoreFile     = "file"
	TokenStoreRedis    = "redis"
	TokenStorePostgres = "postgres"
	TokenStoreMemory   = "memory"
)

type Config struct {
	RunAddress     string
	APIURL         string
	TokenStore     string
	TokenPath      string
	RedisAddr      string
	DatabaseURI    string
	SecretKey      string
	LogLevel       string
	RequestTimeout time.Duration
}

func defaults() Config {
	return Config{
		RunAddress:     "localhost:3000",
		APIURL:         "http://localhost:5000/api",
		TokenStore:     TokenStoreFile,
		TokenPath:      tokenstore.DefaultPath(),
		RedisAddr:      "localhost:6379",
		SecretKey:      "secret",
		LogLevel:       "debug",
		RequestTimeout: 10 * time.Second,
	}
}

// Parse reads the configuration: defaults, then a .env file if present,
// then command line flags, then the environment.
func Parse() *Config {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg := defaults()
	cfg.updateFromFlags(flag.CommandLine, os.Args[1:])
	cfg.updateFromEnv()
	return &cfg
}

func (cfg *Config) updateFromFlags(fs *flag.FlagSet, args []string) {
	flagRunAddress := fs.String("a", cfg.RunAddress, "Frontend server address.")
	flagAPIURL := fs.String("api", cfg.APIURL, "Backend API base URL.")
	flagTokenStore := fs.String("token-store", cfg.TokenStore, "Token storage: file, redis, postgres or memory.")
	flagTokenPath := fs.String("token-path", cfg.TokenPath, "Token file for the file storage.")
	flagRedisAddr := fs.String("redis", cfg.RedisAddr, "Redis address for the redis storage.")
	flagDatabaseURI := fs.String("d", cfg.DatabaseURI, "Postgres DSN for the postgres storage.")
	flagTimeout := fs.Duration("timeout", cfg.RequestTimeout, "Backend request timeout.")

	// flag.CommandLine exits on a parse error by itself.
	_ = fs.Parse(args)

	cfg.RunAddress = *flagRunAddress
	cfg.APIURL = *flagAPIURL
	cfg.TokenStore = *flagTokenStore
	cfg.TokenPath = *flagTokenPath
	cfg.RedisAddr = *flagRedisAddr
	cfg.DatabaseURI = *flagDatabaseURI
	cfg.RequestTimeout = *flagTimeout
}

func (cfg *Config) updateFromEnv() {
	if addr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = addr
	}
	if url, ok := os.LookupEnv("API_URL"); ok {
		cfg.APIURL = url
	}
	if store, ok := os.LookupEnv("TOKEN_STORE"); ok {
		cfg.TokenStore = store
	}
	if path, ok := os.LookupEnv("TOKEN_PATH"); ok {
		cfg.TokenPath = path
	}
	if addr, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.RedisAddr = addr
	}
	if db, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = db
	}
	if secret, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = secret
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
	if timeout, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
}

// DevAPIConfig configures cmd/devapi.
type DevAPIConfig struct {
	RunAddress string
	SecretKey  string
	LogLevel   string
}

func ParseDevAPI() *DevAPIConfig {
	_ = godotenv.Load()

	cfg := DevAPIConfig{
		RunAddress: "localhost:5000",
		SecretKey:  "secret",
		LogLevel:   "debug",
	}
	flagRunAddress := flag.String("a", cfg.RunAddress, "Dev API server address.")
	flag.Parse()
	cfg.RunAddress = *flagRunAddress

	if addr, ok := os.LookupEnv("DEVAPI_ADDRESS"); ok {
		cfg.RunAddress = addr
	}
	if secret, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = secret
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
	return &cfg
}
