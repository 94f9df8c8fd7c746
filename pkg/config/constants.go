package config

import "time"

const (
	DefaultServiceName = "greenroom"

	// Server defaults.
	DefaultGRPCPort        = 9090
	DefaultShutdownTimeout = 10 * time.Second

	// Catalog (TMDB) defaults.
	DefaultCatalogBaseURL = "https://api.themoviedb.org/3"
	DefaultCatalogTimeout = 10 * time.Second

	// Alternative LLM (Ollama) defaults.
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama3.2:latest"
	DefaultOllamaTimeout = 30 * time.Second

	// Resample backend defaults.
	DefaultSamplingBaseURL = "https://api.anthropic.com"
	DefaultSamplingModel   = "claude-sonnet-4-5"
	DefaultSamplingTimeout = 60 * time.Second

	// NATS defaults.
	DefaultMaxReconnect  = 5
	DefaultReconnectWait = 2 * time.Second
)
