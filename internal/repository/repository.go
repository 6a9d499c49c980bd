package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sanyco86/sample-app/internal/db"
	"github.com/sanyco86/sample-app/internal/pagination"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email has already been taken")

const usersOrder = "users.created_at ASC, users.id ASC"

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// MigrateAndSeed creates the schema and inserts users into an empty users table.
func (r *UserRepository) MigrateAndSeed(ctx context.Context, users []User) error {
	err := r.db.MigrateTable(&User{}, &Micropost{}, &Relationship{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(users) == 0 {
		return nil
	}

	for i := range users {
		if users[i].ID == "" {
			users[i].ID = uuid.NewString()
		}
	}

	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]User, error) {
	users := []User{}
	if len(ids) == 0 {
		return users, nil
	}

	err := r.db.GetAllBy(ctx, "id", ids, &users)
	if err != nil {
		return users, fmt.Errorf("get users by id: %w", err)
	}

	return users, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, page pagination.Page) ([]User, error) {
	users := []User{}
	err := r.db.Find(ctx, db.Query{
		Order:  usersOrder,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}, &users)
	if err != nil {
		return users, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.db.Count(ctx, &User{}, db.Query{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// UpdateUser writes the profile columns only. The admin flag is never part of
// the update.
func (r *UserRepository) UpdateUser(ctx context.Context, user User) error {
	err := r.db.UpdateColumns(ctx, &User{}, user.ID, map[string]any{
		"name":            user.Name,
		"email":           user.Email,
		"password_digest": user.PasswordDigest,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, db.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

// DeleteUser removes the user together with their microposts and relationships.
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	err := r.db.DeleteCascade(ctx, &User{}, id,
		db.Cascade{Model: &Micropost{}, Where: "user_id = @id"},
		db.Cascade{Model: &Relationship{}, Where: "follower_id = @id OR followed_id = @id"},
	)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (r *UserRepository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}
