package middleware

import (
	"context"

	"github.com/sanyco86/sample-app/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (core.UserRecord, error)
}
