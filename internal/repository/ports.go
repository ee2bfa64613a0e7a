package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateOne(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	ListBy(ctx context.Context, column string, value any, orderBy string, entity any) error
	CountBy(ctx context.Context, column string, value any, model any) (int64, error)
	ExistsBy(ctx context.Context, column string, value any, model any) (bool, error)
	UpdateOneBy(ctx context.Context, column string, value any, model any, updates map[string]any) error
	DeleteAllBy(ctx context.Context, column string, value any, model any) (int64, error)
}
