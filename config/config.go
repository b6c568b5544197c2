package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	MaxFileSize       int64
	FeedBaseURL       string
	FeedTimeout       time.Duration
	WorkingCapMargin  float64
}

func LoadConfig() *Config {
	// Local development keeps settings in a .env file; absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	feedBaseURL := os.Getenv("FEED_BASE_URL")
	if feedBaseURL == "" {
		feedBaseURL = "https://feed.credlens.local"
	}

	feedTimeout := 10 * time.Second
	if raw := os.Getenv("FEED_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			feedTimeout = time.Duration(secs) * time.Second
		}
	}

	margin := 0.25
	if raw := os.Getenv("WORKING_CAP_MARGIN"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v < 1 {
			margin = v
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		FeedBaseURL:       feedBaseURL,
		FeedTimeout:       feedTimeout,
		WorkingCapMargin:  margin,
	}
}
