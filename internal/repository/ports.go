package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllOrdered(ctx context.Context, order string, entities any) error
	UpdateFields(ctx context.Context, model any, id any, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, model any, id any) (int64, error)
}
