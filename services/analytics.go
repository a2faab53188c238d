package services

import (
	"context"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/jivitesh-dev/portfolio_api/shared"
)

// AnalyticsService keeps one counter per (day, event) pair. It is a
// write-only sink: nothing in the API reads the counters back. Errors are
// logged and swallowed so tracking can never fail a caller.
type AnalyticsService struct {
	appContext.DefaultService

	store     KVStore
	retention time.Duration
}

const ANALYTICS_SVC = "analytics_svc"

const defaultRetentionDays = 90

func (svc AnalyticsService) Id() string {
	return ANALYTICS_SVC
}

func (svc *AnalyticsService) Configure(ctx *appContext.Context) error {
	svc.retention = defaultRetentionDays * 24 * time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *AnalyticsService) Start() error {
	svc.store = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Track increments today's counter for event. Fire and forget.
func (svc *AnalyticsService) Track(ctx context.Context, event string) {
	if event == "" {
		return
	}

	day := time.Now().UTC().Format("2006-01-02")
	key := shared.KeyPrefixAnalytics + day + ":" + event

	raw, err := svc.store.Get(ctx, key)
	if err != nil {
		log.WithError(err).WithField("event", event).Warn("Analytics read failed")
		return
	}

	count := 0
	if raw != "" {
		if count, err = strconv.Atoi(raw); err != nil {
			count = 0
		}
	}

	if err := svc.store.Set(ctx, key, strconv.Itoa(count+1), svc.retention); err != nil {
		log.WithError(err).WithField("event", event).Warn("Analytics write failed")
		return
	}

	analyticsEventsTotal.Inc()
}
