package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jivitesh-dev/portfolio_api/dto"
	"github.com/jivitesh-dev/portfolio_api/model"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

type rateLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}

type contactMailer interface {
	SendNotification(msg model.ContactMessage) bool
	SendConfirmation(msg model.ContactMessage) bool
}

// ContactService orchestrates a submission: rate limit, validate,
// persist, then two independent best-effort emails. The stored message is
// the source of truth; email failures degrade to response flags.
type ContactService struct {
	appContext.DefaultService

	store   KVStore
	limiter rateLimiter
	mailer  contactMailer

	minMessageLen int
}

const CONTACT_SVC = "contact_svc"

const defaultMinMessageLength = 10

func (svc ContactService) Id() string {
	return CONTACT_SVC
}

func (svc *ContactService) Configure(ctx *appContext.Context) error {
	svc.minMessageLen = defaultMinMessageLength
	if raw := os.Getenv("MIN_MESSAGE_LENGTH"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			svc.minMessageLen = n
		}
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ContactService) Start() error {
	svc.store = svc.Service(REDIS_SVC).(*RedisService)
	svc.limiter = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.mailer = svc.Service(EMAIL_SVC).(*EmailService)
	return nil
}

// Submit runs the full intake flow for one submission.
func (svc *ContactService) Submit(ctx context.Context, req dto.ContactRequest, clientIP string) (*dto.ContactResponse, error) {
	allowed, err := svc.limiter.Allow(ctx, clientIP)
	if err != nil {
		return nil, err
	}
	if !allowed {
		contactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		return nil, shared.NewTooManyRequestsError(nil)
	}

	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		contactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, shared.NewBadRequestError(err, dto.FirstValidationError(err))
	}
	if utf8.RuneCountInString(req.Message) < svc.minMessageLen {
		contactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, shared.NewBadRequestError(nil,
			fmt.Sprintf("Message must be at least %d characters", svc.minMessageLen))
	}

	msg := model.ContactMessage{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Title:       req.Title,
		Message:     req.Message,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Read:        false,
	}

	// Unique key per id, so concurrent submissions never overwrite each
	// other. No TTL: messages are retained indefinitely.
	if err := svc.store.Set(ctx, shared.KeyPrefixContact+msg.ID, msg, 0); err != nil {
		return nil, shared.NewInternalError(err)
	}

	notificationSent := svc.mailer.SendNotification(msg)
	confirmationSent := svc.mailer.SendConfirmation(msg)

	contactSubmissionsTotal.WithLabelValues("accepted").Inc()
	log.WithFields(log.Fields{
		"id":           msg.ID,
		"notification": notificationSent,
		"confirmation": confirmationSent,
	}).Info("Contact message stored")

	return &dto.ContactResponse{
		Success:          true,
		NotificationSent: notificationSent,
		ConfirmationSent: confirmationSent,
	}, nil
}

// Messages enumerates every stored contact message for the admin view.
// An empty store yields total 0; a corrupt record is skipped, not fatal.
func (svc *ContactService) Messages(ctx context.Context) (*dto.MessageListResponse, error) {
	keys, err := svc.store.Keys(ctx, shared.KeyPrefixContact+"*")
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	messages := make([]model.ContactMessage, 0, len(keys))
	unread := 0

	for _, key := range keys {
		raw, err := svc.store.Get(ctx, key)
		if err != nil {
			return nil, shared.NewInternalError(err)
		}
		if raw == "" {
			continue
		}

		var msg model.ContactMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			log.WithError(err).WithField("key", key).Warn("Skipping corrupt contact record")
			continue
		}

		if !msg.Read {
			unread++
		}
		messages = append(messages, msg)
	}

	return &dto.MessageListResponse{
		Total:    len(messages),
		Unread:   unread,
		Messages: messages,
	}, nil
}
