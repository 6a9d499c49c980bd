package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sanyco86/sample-app/internal/db"
	"github.com/sanyco86/sample-app/internal/pagination"
)

var ErrMicropostNotFound error = errors.New("micropost not found")

const micropostsOrder = "microposts.created_at DESC, microposts.id DESC"

const feedCondition = "microposts.user_id = ? OR microposts.user_id IN " +
	"(SELECT followed_id FROM relationships WHERE follower_id = ?)"

func (r *UserRepository) CreateMicropost(ctx context.Context, micropost Micropost) (Micropost, error) {
	if micropost.ID == "" {
		micropost.ID = uuid.NewString()
	}

	if err := r.db.Create(ctx, &micropost); err != nil {
		return Micropost{}, fmt.Errorf("create micropost: %w", err)
	}

	return micropost, nil
}

func (r *UserRepository) GetMicropost(ctx context.Context, id string) (Micropost, error) {
	var micropost Micropost

	err := r.db.GetOneBy(ctx, "id", id, &micropost)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Micropost{}, ErrMicropostNotFound
		}
		return Micropost{}, fmt.Errorf("get micropost: %w", err)
	}

	return micropost, nil
}

func (r *UserRepository) DeleteMicropost(ctx context.Context, id string) error {
	deleted, err := r.db.DeleteBy(ctx, &Micropost{}, db.Query{
		Where: "id = ?",
		Args:  []any{id},
	})
	if err != nil {
		return fmt.Errorf("delete micropost: %w", err)
	}
	if deleted == 0 {
		return ErrMicropostNotFound
	}

	return nil
}

func (r *UserRepository) ListMicroposts(ctx context.Context, userID string, page pagination.Page) ([]Micropost, error) {
	return r.findMicroposts(ctx, db.Query{
		Where:  "microposts.user_id = ?",
		Args:   []any{userID},
		Order:  micropostsOrder,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
}

func (r *UserRepository) CountMicroposts(ctx context.Context, userID string) (int64, error) {
	count, err := r.db.Count(ctx, &Micropost{}, db.Query{
		Where: "microposts.user_id = ?",
		Args:  []any{userID},
	})
	if err != nil {
		return 0, fmt.Errorf("count microposts: %w", err)
	}
	return count, nil
}

// Feed lists the microposts of the user and of everyone they follow.
func (r *UserRepository) Feed(ctx context.Context, userID string, page pagination.Page) ([]Micropost, error) {
	return r.findMicroposts(ctx, db.Query{
		Where:  feedCondition,
		Args:   []any{userID, userID},
		Order:  micropostsOrder,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
}

func (r *UserRepository) CountFeed(ctx context.Context, userID string) (int64, error) {
	count, err := r.db.Count(ctx, &Micropost{}, db.Query{
		Where: feedCondition,
		Args:  []any{userID, userID},
	})
	if err != nil {
		return 0, fmt.Errorf("count feed: %w", err)
	}
	return count, nil
}

func (r *UserRepository) findMicroposts(ctx context.Context, q db.Query) ([]Micropost, error) {
	microposts := []Micropost{}
	if err := r.db.Find(ctx, q, &microposts); err != nil {
		return microposts, fmt.Errorf("find microposts: %w", err)
	}
	return microposts, nil
}
