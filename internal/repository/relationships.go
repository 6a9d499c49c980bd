package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sanyco86/sample-app/internal/db"
	"github.com/sanyco86/sample-app/internal/pagination"
)

var ErrRelationshipExists error = errors.New("relationship already exists")
var ErrRelationshipNotFound error = errors.New("relationship not found")

const relationshipPair = "follower_id = ? AND followed_id = ?"

func (r *UserRepository) CreateRelationship(ctx context.Context, followerID, followedID string) error {
	err := r.db.Create(ctx, &Relationship{
		ID:         uuid.NewString(),
		FollowerID: followerID,
		FollowedID: followedID,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrRelationshipExists
		}
		return fmt.Errorf("create relationship: %w", err)
	}

	return nil
}

func (r *UserRepository) DeleteRelationship(ctx context.Context, followerID, followedID string) error {
	deleted, err := r.db.DeleteBy(ctx, &Relationship{}, db.Query{
		Where: relationshipPair,
		Args:  []any{followerID, followedID},
	})
	if err != nil {
		return fmt.Errorf("delete relationship: %w", err)
	}
	if deleted == 0 {
		return ErrRelationshipNotFound
	}

	return nil
}

func (r *UserRepository) RelationshipExists(ctx context.Context, followerID, followedID string) (bool, error) {
	count, err := r.db.Count(ctx, &Relationship{}, db.Query{
		Where: relationshipPair,
		Args:  []any{followerID, followedID},
	})
	if err != nil {
		return false, fmt.Errorf("check relationship: %w", err)
	}
	return count > 0, nil
}

// ListFollowing lists the users followed by userID.
func (r *UserRepository) ListFollowing(ctx context.Context, userID string, page pagination.Page) ([]User, error) {
	return r.findRelated(ctx, "relationships.followed_id", "relationships.follower_id", userID, page)
}

// ListFollowers lists the users following userID.
func (r *UserRepository) ListFollowers(ctx context.Context, userID string, page pagination.Page) ([]User, error) {
	return r.findRelated(ctx, "relationships.follower_id", "relationships.followed_id", userID, page)
}

func (r *UserRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return r.countRelationships(ctx, "follower_id", userID)
}

func (r *UserRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return r.countRelationships(ctx, "followed_id", userID)
}

func (r *UserRepository) findRelated(ctx context.Context, joinColumn, filterColumn, userID string, page pagination.Page) ([]User, error) {
	users := []User{}
	err := r.db.Find(ctx, db.Query{
		Joins:  fmt.Sprintf("JOIN relationships ON %s = users.id", joinColumn),
		Where:  fmt.Sprintf("%s = ?", filterColumn),
		Args:   []any{userID},
		Order:  usersOrder,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}, &users)
	if err != nil {
		return users, fmt.Errorf("list related users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) countRelationships(ctx context.Context, column, userID string) (int64, error) {
	count, err := r.db.Count(ctx, &Relationship{}, db.Query{
		Where: fmt.Sprintf("%s = ?", column),
		Args:  []any{userID},
	})
	if err != nil {
		return 0, fmt.Errorf("count relationships by %s: %w", column, err)
	}
	return count, nil
}
