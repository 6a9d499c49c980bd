package core

import (
	"context"

	"github.com/golang-jwt/jwt"
	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/pagination"
	"github.com/sanyco86/sample-app/internal/repository"
	tokenIssuer "github.com/sanyco86/sample-app/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]repository.User, error)
	ListUsers(ctx context.Context, page pagination.Page) ([]repository.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user repository.User) error
	DeleteUser(ctx context.Context, id string) error

	CreateMicropost(ctx context.Context, micropost repository.Micropost) (repository.Micropost, error)
	GetMicropost(ctx context.Context, id string) (repository.Micropost, error)
	DeleteMicropost(ctx context.Context, id string) error
	ListMicroposts(ctx context.Context, userID string, page pagination.Page) ([]repository.Micropost, error)
	CountMicroposts(ctx context.Context, userID string) (int64, error)
	Feed(ctx context.Context, userID string, page pagination.Page) ([]repository.Micropost, error)
	CountFeed(ctx context.Context, userID string) (int64, error)

	CreateRelationship(ctx context.Context, followerID, followedID string) error
	DeleteRelationship(ctx context.Context, followerID, followedID string) error
	RelationshipExists(ctx context.Context, followerID, followedID string) (bool, error)
	ListFollowing(ctx context.Context, userID string, page pagination.Page) ([]repository.User, error)
	ListFollowers(ctx context.Context, userID string, page pagination.Page) ([]repository.User, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
