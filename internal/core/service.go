package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sanyco86/sample-app/internal/events"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrMicropostNotFound error = errors.New("micropost not found")
var ErrForbidden error = errors.New("action not allowed")
var ErrEmailTaken error = errors.New("email has already been taken")
var ErrAlreadyFollowing error = errors.New("already following user")
var ErrNotFollowing error = errors.New("not following user")
var ErrSelfFollow error = errors.New("users cannot follow themselves")

type UserService struct {
	logs         *zap.SugaredLogger
	repo         Repository
	jwtIssuer    JWTIssuer
	events       EventPublisher
	sessionTTL   time.Duration
	passwordCost int
}

func NewUserService(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, publisher EventPublisher, sessionTTL time.Duration) *UserService {
	return &UserService{
		logs:         logger,
		repo:         repo,
		jwtIssuer:    jwt,
		events:       publisher,
		sessionTTL:   sessionTTL,
		passwordCost: bcrypt.DefaultCost,
	}
}

// WithPasswordCost sets the bcrypt cost used for new password digests.
func (s *UserService) WithPasswordCost(cost int) *UserService {
	s.passwordCost = cost
	return s
}

func (s *UserService) hashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (s *UserService) publish(ctx context.Context, eventType events.Type, actorID, subjectID string) {
	err := s.events.Publish(ctx, events.Event{
		Type:       eventType,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logs.Errorw("failed to publish event", "type", eventType, "actorId", actorID, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
