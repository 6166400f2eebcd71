package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends accepted by LINKHUB_STORE_BACKEND.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 5s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SiteTitle string // title of the rendered page

	// Admin credentials: one of the two is required, the hash wins when both are set.
	AdminPassword     string // plain shared password, hashed with bcrypt at startup
	AdminPasswordHash string // pre-computed bcrypt hash

	// Storage
	StoreBackend  string        // "redis" | "memory"
	KeyPrefix     string        // optional namespace prepended to every key
	SweepInterval time.Duration // memory backend: how often expired keys are reclaimed

	// First-run seed (optional, empty = skip)
	HomepageServicesFile  string // Homepage services.yaml
	HomepageBookmarksFile string // Homepage bookmarks.yaml

	// Public submission throttle
	ApplyBurst        int // bucket size per client IP (0 = unthrottled)
	ApplyRefillPerMin int // tokens regained per minute

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts   []string // optional, restrict access to specific Host headers
	AllowedCIDRS   []string // optional, restrict health endpoints to specific IPs/CIDRs
	TrustProxy     bool     // true => honor proxy IP headers, but only from TrustedProxies
	TrustedProxies []string // peers allowed to set proxy IP headers (ex: cloudflared on localhost)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKHUB_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("LINKHUB_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKHUB_PRETTY_LOG", true),

		SiteTitle: getenv("LINKHUB_SITE_TITLE", "Navigation"),

		AdminPassword:     getenv("LINKHUB_ADMIN_PASSWORD", ""),
		AdminPasswordHash: getenv("LINKHUB_ADMIN_PASSWORD_HASH", ""),

		// Storage
		StoreBackend:  oneOf("LINKHUB_STORE_BACKEND", BackendRedis, BackendRedis, BackendMemory),
		KeyPrefix:     getenv("LINKHUB_KEY_PREFIX", ""),
		SweepInterval: mustDuration("LINKHUB_SWEEP_INTERVAL", time.Minute),

		HomepageServicesFile:  getenv("LINKHUB_HOMEPAGE_SERVICES_FILE", ""),
		HomepageBookmarksFile: getenv("LINKHUB_HOMEPAGE_BOOKMARKS_FILE", ""),

		ApplyBurst:        getenvInt("LINKHUB_APPLY_BURST", 5),
		ApplyRefillPerMin: getenvInt("LINKHUB_APPLY_REFILL_PER_MIN", 10),

		// Redis settings
		RedisAddr:           getenv("LINKHUB_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("LINKHUB_REDIS_USERNAME", ""),
		RedisPassword:       getenv("LINKHUB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("LINKHUB_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts:   splitAndTrim(getenv("LINKHUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   parseAllowedIPs(getenv("LINKHUB_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("LINKHUB_TRUST_PROXY", false),
		TrustedProxies: splitAndTrim(getenv("LINKHUB_TRUSTED_PROXIES", "127.0.0.1,::1")),
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		panic("❌ FATAL: one of LINKHUB_ADMIN_PASSWORD or LINKHUB_ADMIN_PASSWORD_HASH must be set")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	const mask = "***REDACTED***"
	if c.AdminPassword != "" {
		c.AdminPassword = mask
	}
	if c.AdminPasswordHash != "" {
		c.AdminPasswordHash = mask
	}
	if c.RedisPassword != "" {
		c.RedisPassword = mask
	}
	if c.RedisUser != "" {
		c.RedisUser = mask
	}
	return c
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// oneOf returns the value of key if it is one of allowed, def when unset,
// and panics on anything else.
func oneOf(key, def string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	panic(fmt.Sprintf("❌ FATAL: Invalid value for %s: %q (allowed: %s)", key, v, strings.Join(allowed, ", ")))
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
