package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/adpilot/dashboard/internal/auth"
	"github.com/adpilot/dashboard/internal/config"
	"github.com/adpilot/dashboard/internal/events"
	"github.com/adpilot/dashboard/internal/models"
	"github.com/adpilot/dashboard/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService tracks the logged-in user. Identity is trust-on-presence:
// a persisted user restores an authenticated session without any credential
// check. That is appropriate for a local single-user dashboard only; this
// is not a security boundary.
type SessionService struct {
	store     storage.Store
	cfg       *config.Config
	publisher events.Publisher
	log       *zap.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewSessionService(store storage.Store, cfg *config.Config, publisher events.Publisher, log *zap.Logger) *SessionService {
	return &SessionService{store: store, cfg: cfg, publisher: publisher, log: log}
}

// Hydrate restores a persisted identity, if any.
func (s *SessionService) Hydrate(ctx context.Context) {
	var saved models.User
	ok, err := s.store.Load(ctx, storage.KeyUser, &saved)
	if err != nil {
		s.log.Warn("session not restored", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	s.mu.Lock()
	s.user = &saved
	s.mu.Unlock()
	s.log.Info("session restored", zap.String("user", saved.Name))
}

// Login sets the current user, persists it and issues a session token.
func (s *SessionService) Login(ctx context.Context, name, email string) (*models.User, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", requiredField("name")
	}

	user := models.User{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Role:       "marketer",
		LoggedInAt: time.Now(),
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.store.Save(ctx, storage.KeyUser, user); err != nil {
		s.log.Warn("session not persisted, continuing in memory", zap.Error(err))
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Name, s.cfg.JWTExpiration)
	if err != nil {
		return nil, "", err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.StreamSession, events.Event{
			Type:    events.EventSessionStarted,
			Payload: map[string]any{"user": user.Name},
		})
	}
	s.log.Info("user logged in", zap.String("user", user.Name))
	return &user, token, nil
}

// Logout clears the current user and the persisted identity.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.KeyUser); err != nil {
		s.log.Warn("persisted session not cleared", zap.Error(err))
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.StreamSession, events.Event{
			Type: events.EventSessionEnded,
		})
	}
	s.log.Info("user logged out")
}

// Current returns the logged-in user, or nil when nobody is.
func (s *SessionService) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
