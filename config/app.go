package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StorePostgres StoreDriver = "postgres"
	StoreMongo    StoreDriver = "mongo"
)

type AppConfig struct {
	Port        string
	StoreDriver StoreDriver

	MatchMode     string
	MatchMaxBonus int
	RandomSeed    uint64
	RolesFile     string
	DefaultRole   string

	CatalogCacheTTL time.Duration
	SeedCatalog     bool

	ScraperCron    string // empty disables scheduled scraping
	ScraperFeedURL string // empty uses the bundled mock feed
	IngestWorkers  int

	RabbitMQURL string
	RedisAddr   string
}

var (
	appConfig    *AppConfig
	appConfigErr error
	appOnce      sync.Once
)

// LoadAppConfig reads the process environment once.
func LoadAppConfig() (*AppConfig, error) {
	appOnce.Do(func() {
		appConfig, appConfigErr = ParseAppConfig(os.Getenv)
	})
	return appConfig, appConfigErr
}

// ParseAppConfig builds the config from getenv, applying defaults.
func ParseAppConfig(getenv func(string) string) (*AppConfig, error) {
	e := env{get: getenv}
	cfg := &AppConfig{
		Port:            e.str("PORT", "8080"),
		StoreDriver:     StoreDriver(strings.ToLower(e.str("STORE_DRIVER", string(StoreMemory)))),
		MatchMode:       e.str("MATCH_MODE", "exact"),
		MatchMaxBonus:   e.num("MATCH_MAX_BONUS", 10),
		RolesFile:       e.str("ROLES_FILE", ""),
		DefaultRole:     e.str("DEFAULT_ROLE", ""),
		CatalogCacheTTL: e.duration("CATALOG_CACHE_TTL", 5*time.Minute),
		SeedCatalog:     e.flag("SEED_CATALOG", true),
		ScraperCron:     e.str("SCRAPER_CRON", "0 */6 * * *"),
		ScraperFeedURL:  e.str("SCRAPER_FEED_URL", ""),
		IngestWorkers:   e.num("INGEST_WORKERS", 2),
		RabbitMQURL:     e.str("RABBITMQ_URL", ""),
		RedisAddr:       redisAddr(getenv),
	}
	cfg.RandomSeed = e.u64("RANDOM_SEED", uint64(time.Now().UnixNano()))

	switch cfg.StoreDriver {
	case StoreMemory, StorePostgres, StoreMongo:
	default:
		e.fail("STORE_DRIVER", fmt.Errorf("unknown driver %q", cfg.StoreDriver))
	}
	if strings.EqualFold(cfg.ScraperCron, "off") {
		cfg.ScraperCron = ""
	}
	if e.err != nil {
		return nil, e.err
	}
	return cfg, nil
}

func redisAddr(getenv func(string) string) string {
	for _, k := range []string{"REDIS_ADDR", "REDIS_URI", "REDIS_URL"} {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

// env collects the first parse failure so every lookup stays a one-liner.
type env struct {
	get func(string) string
	err error
}

func (e *env) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("config %s: %w", key, err)
	}
}

func (e *env) str(key, def string) string {
	if v := strings.TrimSpace(e.get(key)); v != "" {
		return v
	}
	return def
}

func (e *env) num(key string, def int) int {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *env) u64(key string, def uint64) uint64 {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *env) flag(key string, def bool) bool {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return d
}
