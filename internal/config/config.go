package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Mongo struct {
	URI    string
	DBName string
}

type Auth struct {
	SecretKey string
}

type Analytics struct {
	TrackingID string
}

type Config struct {
	HTTP      HTTPServer
	Mongo     Mongo
	Auth      Auth
	Analytics Analytics
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:      *newHTTP(),
		Mongo:     *newMongo(),
		Auth:      *newAuth(),
		Analytics: *newAnalytics(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		URI:    getenv("DB", "mongodb://localhost:27017"),
		DBName: getenv("DB_NAME", "moviehub"),
	}
}

func newAuth() *Auth {
	return &Auth{
		SecretKey: getenv("SECRET_KEY", "shared"),
	}
}

func newAnalytics() *Analytics {
	// Empty tracking ID disables reporting.
	return &Analytics{
		TrackingID: os.Getenv("GA_KEY"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
