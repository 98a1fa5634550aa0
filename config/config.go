package config

import "os"

// Backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// StorageBackend returns which issue storage to run on. In-memory is
// the default; "mongo" requires MONGODB_URI.
func StorageBackend() string {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		return BackendMemory
	}
	return backend
}

// Port returns the listen port, defaulting to 8080.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// RedisEnabled reports whether a Redis address is configured; the
// issue rate limiter is only wired when it is.
func RedisEnabled() bool {
	return os.Getenv("REDIS_ADDRESS") != ""
}

// SeedDemo reports whether the demo dataset should be loaded on boot.
func SeedDemo() bool {
	return os.Getenv("SEED_DEMO") == "true"
}
