package services

import (
	"context"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/jivitesh-dev/portfolio_api/shared"
)

// RateLimitService bounds contact submissions per client identifier.
// The window is fixed, not sliding: the counter key gets its TTL on first
// write and the store's expiry owns the reset. Counts only move up inside
// a window.
type RateLimitService struct {
	appContext.DefaultService

	store KVStore

	maxRequests int
	window      time.Duration
	failOpen    bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

const (
	defaultMaxRequests   = 10
	defaultWindowSeconds = 60
)

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.maxRequests = defaultMaxRequests
	if raw := os.Getenv("RATE_LIMIT_MAX"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			svc.maxRequests = n
		}
	}

	windowSeconds := defaultWindowSeconds
	if raw := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			windowSeconds = n
		}
	}
	svc.window = time.Duration(windowSeconds) * time.Second

	svc.failOpen = os.Getenv("RATE_LIMIT_FAIL_OPEN") == "true"

	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.store = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Allow decides whether identifier may submit, incrementing its counter
// as a side effect when allowed. A denied attempt does not increment.
// Store failures follow the configured policy: fail-open admits the
// request, fail-closed surfaces a dependency error.
func (svc *RateLimitService) Allow(ctx context.Context, identifier string) (bool, error) {
	key := shared.KeyPrefixRateLimit + identifier

	raw, err := svc.store.Get(ctx, key)
	if err != nil {
		return svc.failPolicy(identifier, err)
	}

	count := 0
	if raw != "" {
		if count, err = strconv.Atoi(raw); err != nil {
			// Treat a corrupt counter as empty; TTL will clear it.
			count = 0
		}
	}

	if count >= svc.maxRequests {
		rateLimitedTotal.Inc()
		return false, nil
	}

	n, err := svc.store.Incr(ctx, key)
	if err != nil {
		return svc.failPolicy(identifier, err)
	}

	if n == 1 {
		if err := svc.store.Expire(ctx, key, svc.window); err != nil {
			return svc.failPolicy(identifier, err)
		}
	}

	return true, nil
}

func (svc *RateLimitService) failPolicy(identifier string, err error) (bool, error) {
	if svc.failOpen {
		log.WithError(err).WithField("identifier", identifier).Warn("Rate limit store unavailable, failing open")
		return true, nil
	}
	return false, shared.NewInternalError(err)
}
