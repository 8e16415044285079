package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	CatalogPath string
	OutputPath  string

	SerpAPIBase string
	SerpAPIKey  string

	RapidAPIHost  string
	RapidAPIBase  string
	RapidAPIKey   string
	OriginID      string
	DestinationID string

	LLMProvider string
	OllamaURL   string
	LLMModel    string
	GeminiKey   string

	HTTPTimeout time.Duration
	LLMTimeout  time.Duration
}

// LoadDotEnv loads .env files into the environment; a missing file is fine.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using environment")
	}
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		CatalogPath: env("CATALOG_PATH", ""),
		OutputPath:  env("OUTPUT_PATH", "travel_recommendations.pdf"),

		SerpAPIBase: env("SERPAPI_BASE_URL", "https://serpapi.com"),
		SerpAPIKey:  env("SERPAPI_KEY", ""),

		RapidAPIHost:  env("RAPIDAPI_HOST", "skyscanner89.p.rapidapi.com"),
		RapidAPIBase:  env("RAPIDAPI_BASE_URL", ""),
		RapidAPIKey:   env("RAPIDAPI_KEY", ""),
		OriginID:      env("SKYSCANNER_ORIGIN_ID", "27537542"),
		DestinationID: env("SKYSCANNER_DESTINATION_ID", "95673827"),

		LLMProvider: env("LLM_PROVIDER", "ollama"),
		OllamaURL:   env("OLLAMA_URL", "http://localhost:11434"),
		LLMModel:    env("LLM_MODEL", ""),
		GeminiKey:   env("GEMINI_API_KEY", ""),

		HTTPTimeout: time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
		LLMTimeout:  time.Duration(atoi("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
	}
	if c.SerpAPIKey == "" {
		log.Warn().Msg("SERPAPI_KEY is empty, trend search will use catalog data")
	}
	if c.RapidAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is empty, flight and hotel prices will be 0")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
