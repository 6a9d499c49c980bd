package handler

import (
	"context"
	"net/http"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/pagination"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	SignUp(ctx context.Context, msg core.SignupMessage) (core.Session, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	GetUser(ctx context.Context, userID string) (core.UserRecord, error)
	ListUsers(ctx context.Context, page pagination.Page) (core.UserList, error)
	GetProfile(ctx context.Context, viewerID, userID string, page pagination.Page) (core.Profile, error)
	UpdateProfile(ctx context.Context, actorID, userID string, update core.ProfileUpdate) (core.UserRecord, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	Following(ctx context.Context, userID string, page pagination.Page) (core.FollowList, error)
	Followers(ctx context.Context, userID string, page pagination.Page) (core.FollowList, error)
	PostMicropost(ctx context.Context, userID, content string) (core.MicropostRecord, error)
	DeleteMicropost(ctx context.Context, actorID, micropostID string) error
	Feed(ctx context.Context, userID string, page pagination.Page) (core.Feed, error)
	Stats(ctx context.Context, userID string) (core.Stats, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormBinder) error
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page view.Page) error
}
