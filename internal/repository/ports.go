package repository

import (
	"context"

	"github.com/sanyco86/sample-app/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Seed(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, q db.Query, dest any) error
	Count(ctx context.Context, model any, q db.Query) (int64, error)
	UpdateColumns(ctx context.Context, model any, id string, values map[string]any) error
	DeleteBy(ctx context.Context, model any, q db.Query) (int64, error)
	DeleteCascade(ctx context.Context, model any, id string, dependents ...db.Cascade) error
}
