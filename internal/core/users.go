package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
)

func (s *UserService) GetUser(ctx context.Context, userID string) (UserRecord, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return UserRecord{}, err
	}
	return toUserRecord(user), nil
}

func (s *UserService) ListUsers(ctx context.Context, page pagination.Page) (UserList, error) {
	users, err := s.repo.ListUsers(ctx, page)
	if err != nil {
		return UserList{}, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return UserList{}, fmt.Errorf("count users: %w", err)
	}

	return UserList{
		Users: toUserRecords(users),
		Total: int(total),
		Page:  page,
	}, nil
}

// GetProfile loads a user with their stats and a page of their microposts.
// viewerID may be empty for anonymous visitors.
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID string, page pagination.Page) (Profile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	microposts, err := s.repo.ListMicroposts(ctx, userID, page)
	if err != nil {
		return Profile{}, fmt.Errorf("list microposts: %w", err)
	}

	author := toUserRecord(user)
	records := make([]MicropostRecord, len(microposts))
	for i, m := range microposts {
		records[i] = toMicropostRecord(m, author)
	}

	following := false
	if viewerID != "" && viewerID != userID {
		following, err = s.repo.RelationshipExists(ctx, viewerID, userID)
		if err != nil {
			return Profile{}, fmt.Errorf("check relationship: %w", err)
		}
	}

	return Profile{
		User:       author,
		Stats:      stats,
		Microposts: records,
		Page:       page,
		Following:  following,
	}, nil
}

func (s *UserService) Stats(ctx context.Context, userID string) (Stats, error) {
	microposts, err := s.repo.CountMicroposts(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("count microposts: %w", err)
	}

	following, err := s.repo.CountFollowing(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("count following: %w", err)
	}

	followers, err := s.repo.CountFollowers(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("count followers: %w", err)
	}

	return Stats{
		Microposts: int(microposts),
		Following:  int(following),
		Followers:  int(followers),
	}, nil
}

// UpdateProfile changes the name, email and optionally the password of the
// acting user. The admin flag is left as stored.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, userID string, update ProfileUpdate) (UserRecord, error) {
	if actorID != userID {
		return UserRecord{}, ErrForbidden
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return UserRecord{}, err
	}

	user.Name = strings.TrimSpace(update.Name)
	user.Email = normalizeEmail(update.Email)
	if update.Password != "" {
		user.PasswordDigest, err = s.hashPassword(update.Password)
		if err != nil {
			return UserRecord{}, fmt.Errorf("hash password: %w", err)
		}
	}

	err = s.repo.UpdateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return UserRecord{}, ErrEmailTaken
		case errors.Is(err, repository.ErrUserNotFound):
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	s.logs.Infow("profile updated", "userId", user.ID)
	s.publish(ctx, events.UserUpdated, actorID, user.ID)

	return toUserRecord(user), nil
}

// DeleteUser removes userID on behalf of an administrator. Administrators
// cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID string) error {
	actor, err := s.getUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrForbidden
		}
		return err
	}

	if !actor.Admin || actor.ID == userID {
		return ErrForbidden
	}

	err = s.repo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.logs.Infow("user deleted", "userId", userID, "adminId", actorID)
	s.publish(ctx, events.UserDeleted, actorID, userID)

	return nil
}

func (s *UserService) getUser(ctx context.Context, userID string) (repository.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}
