package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/repository"
	tokenIssuer "github.com/sanyco86/sample-app/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// SignUp creates a regular user and opens a session for them.
func (s *UserService) SignUp(ctx context.Context, msg SignupMessage) (Session, error) {
	digest, err := s.hashPassword(msg.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, repository.User{
		Name:           strings.TrimSpace(msg.Name),
		Email:          normalizeEmail(msg.Email),
		PasswordDigest: digest,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user signed up", "userId", user.ID)
	s.publish(ctx, events.UserSignedUp, user.ID, user.ID)

	return s.newSession(user)
}

func (s *UserService) Authenticate(ctx context.Context, msg AuthMessage) (Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(msg.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(msg.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	s.logs.Infow("user signed in", "userId", user.ID)

	return s.newSession(user)
}

// CurrentUser resolves the owner of a session token.
func (s *UserService) CurrentUser(ctx context.Context, token string) (UserRecord, error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return UserRecord{}, fmt.Errorf("validate jwt token: %w", err)
	}

	userID, err := tokenIssuer.Subject(claims)
	if err != nil {
		return UserRecord{}, err
	}

	return s.GetUser(ctx, userID)
}

func (s *UserService) newSession(user repository.User) (Session, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Name,
		Subject:    user.ID,
		Expiration: s.sessionTTL,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Token: signed,
		User:  toUserRecord(user),
	}, nil
}
