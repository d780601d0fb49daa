package config

import "time"

// ServerOptions holds settings for the HTTP console backend.
// No echo types are exposed here.
type ServerOptions struct {
	Addr           string        // listen address, i.e. ":8080"
	AllowOrigins   []string      // CORS origins
	RateLimitRPS   float64       // submit requests per second per client IP
	RateLimitBurst int           // submit burst per client IP
	SessionIdleTTL time.Duration // idle sessions older than this are dropped
	SweepInterval  time.Duration // how often idle sessions are looked for
}
