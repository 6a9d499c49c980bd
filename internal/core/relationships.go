package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
)

func (s *UserService) Follow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	if _, err := s.getUser(ctx, followedID); err != nil {
		return err
	}

	err := s.repo.CreateRelationship(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, repository.ErrRelationshipExists) {
			return ErrAlreadyFollowing
		}
		return fmt.Errorf("create relationship: %w", err)
	}

	s.logs.Infow("user followed", "followerId", followerID, "followedId", followedID)
	s.publish(ctx, events.UserFollowed, followerID, followedID)

	return nil
}

func (s *UserService) Unfollow(ctx context.Context, followerID, followedID string) error {
	err := s.repo.DeleteRelationship(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, repository.ErrRelationshipNotFound) {
			return ErrNotFollowing
		}
		return fmt.Errorf("delete relationship: %w", err)
	}

	s.logs.Infow("user unfollowed", "followerId", followerID, "followedId", followedID)
	s.publish(ctx, events.UserUnfollowed, followerID, followedID)

	return nil
}

// Following lists the users userID follows.
func (s *UserService) Following(ctx context.Context, userID string, page pagination.Page) (FollowList, error) {
	return s.followList(ctx, userID, page, s.repo.ListFollowing, func(st Stats) int { return st.Following })
}

// Followers lists the users following userID.
func (s *UserService) Followers(ctx context.Context, userID string, page pagination.Page) (FollowList, error) {
	return s.followList(ctx, userID, page, s.repo.ListFollowers, func(st Stats) int { return st.Followers })
}

type listRelatedFunc func(ctx context.Context, userID string, page pagination.Page) ([]repository.User, error)

func (s *UserService) followList(ctx context.Context, userID string, page pagination.Page, list listRelatedFunc, total func(Stats) int) (FollowList, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return FollowList{}, err
	}

	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return FollowList{}, err
	}

	users, err := list(ctx, userID, page)
	if err != nil {
		return FollowList{}, fmt.Errorf("list related users: %w", err)
	}

	return FollowList{
		User:  toUserRecord(user),
		Stats: stats,
		Users: toUserRecords(users),
		Total: total(stats),
		Page:  page,
	}, nil
}
