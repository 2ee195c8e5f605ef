// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration knobs for the HTTP server and the search index.
type Config struct {
	HTTPAddr         string
	IndexBackend     string // "elastic" or "memory"
	ElasticAddresses []string
	ProductIndex     string
	UserIndex        string
	ShutdownTimeout  time.Duration
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		IndexBackend:     getenv("INDEX_BACKEND", "elastic"),
		ElasticAddresses: splitCSV(getenv("ELASTIC_ADDRESSES", "http://localhost:9200")),
		ProductIndex:     getenv("PRODUCT_INDEX", "product"),
		UserIndex:        getenv("USER_INDEX", "userinfo"),
		ShutdownTimeout:  durenvs("SHUTDOWN_TIMEOUT", 5),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
