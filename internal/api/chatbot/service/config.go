package chatbotService

import (
	"GlamoraBackend/pkg/cache"
	"GlamoraBackend/pkg/conversation"
	"GlamoraBackend/pkg/intent"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"

	OrderIDSchemeUUID    = "uuid"
	OrderIDSchemeNumeric = "numeric"

	cacheKeyPrefix = "chat:cache:"
)

type Config struct {
	Classifier    string
	SessionStore  string
	SessionTTL    time.Duration
	CacheDriver   string
	CacheTTL      time.Duration
	OrderIDScheme string
	Currency      string
}

func DefaultConfig() Config {
	return Config{
		Classifier:    intent.StrategyBayes,
		SessionStore:  SessionStoreMemory,
		SessionTTL:    conversation.DefaultSessionTTL,
		CacheDriver:   CacheDriverMemory,
		CacheTTL:      cache.DefaultTTL,
		OrderIDScheme: OrderIDSchemeUUID,
		Currency:      "Ksh",
	}
}

// NewConfigFromEnv reads the CHATBOT_* variables. Unknown or malformed values
// keep their defaults.
func NewConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Classifier = oneOf(os.Getenv("CHATBOT_CLASSIFIER"), cfg.Classifier, intent.StrategyBayes, intent.StrategyPattern)
	cfg.SessionStore = oneOf(os.Getenv("CHATBOT_SESSION_STORE"), cfg.SessionStore, SessionStoreMemory, SessionStoreRedis)
	cfg.CacheDriver = oneOf(os.Getenv("CHATBOT_CACHE_DRIVER"), cfg.CacheDriver, CacheDriverMemory, CacheDriverRedis, CacheDriverNone)
	cfg.OrderIDScheme = oneOf(os.Getenv("CHATBOT_ORDER_ID_SCHEME"), cfg.OrderIDScheme, OrderIDSchemeUUID, OrderIDSchemeNumeric)
	cfg.SessionTTL = duration(os.Getenv("CHATBOT_SESSION_TTL"), cfg.SessionTTL)
	cfg.CacheTTL = duration(os.Getenv("CHATBOT_CACHE_TTL"), cfg.CacheTTL)

	if currency := strings.TrimSpace(os.Getenv("CHATBOT_CURRENCY")); currency != "" {
		cfg.Currency = currency
	}

	return cfg
}

// NewSessionStore builds the configured conversation store. The redis store
// needs a client; without one the memory store is used.
func NewSessionStore(cfg Config, client *redis.Client, log *logrus.Logger) conversation.Store {
	if cfg.SessionStore == SessionStoreRedis {
		if client != nil {
			return conversation.NewRedisStore(client, cfg.SessionTTL)
		}
		log.Warn("CHATBOT_SESSION_STORE=redis without a redis client, using memory store")
	}
	return conversation.NewMemoryStore(cfg.SessionTTL)
}

func NewCache(cfg Config, client *redis.Client, log *logrus.Logger) cache.Cache {
	switch cfg.CacheDriver {
	case CacheDriverNone:
		return cache.NewNop()
	case CacheDriverRedis:
		if client != nil {
			return cache.NewRedis(client, cfg.CacheTTL, cacheKeyPrefix)
		}
		log.Warn("CHATBOT_CACHE_DRIVER=redis without a redis client, using memory cache")
	}
	return cache.NewMemory(cfg.CacheTTL)
}

func oneOf(value, fallback string, allowed ...string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return fallback
}

func duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
