package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrInvalidEmail is a user-facing validation error.
	ErrInvalidEmail = errors.New("please enter a valid email address")
	// ErrSubscriptionsUnavailable means no subscriber store is configured.
	ErrSubscriptionsUnavailable = errors.New("subscriptions are temporarily unavailable")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubscriberService interface {
	Subscribe(ctx context.Context, name, email string) (*models.Subscriber, error)
	List(ctx context.Context) ([]models.Subscriber, error)
}

type subscriberService struct {
	repo repository.SubscriberRepo
}

func NewSubscriberService(repo repository.SubscriberRepo) SubscriberService {
	return &subscriberService{repo: repo}
}

func (s *subscriberService) Subscribe(ctx context.Context, name, email string) (*models.Subscriber, error) {
	log := logger.WithCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if !emailRe.MatchString(email) {
		log.Warn("subscribe: invalid email")
		return nil, ErrInvalidEmail
	}
	if s.repo == nil {
		return nil, ErrSubscriptionsUnavailable
	}

	sub, err := s.repo.Create(ctx, name, email)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			log.Info("subscribe: duplicate email")
			return nil, err
		}
		log.Error("subscribe: store failure", zap.Error(err))
		return nil, err
	}

	log.Info("subscribe: new subscriber", zap.String("id", sub.ID))
	return sub, nil
}

func (s *subscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	if s.repo == nil {
		return nil, ErrSubscriptionsUnavailable
	}
	return s.repo.List(ctx)
}
