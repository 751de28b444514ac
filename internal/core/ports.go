package core

import (
	"context"
	"scribe/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreatePost(ctx context.Context, post repository.Post) (repository.Post, error)
	GetPost(ctx context.Context, id uint) (repository.Post, error)
	ListPosts(ctx context.Context) ([]repository.Post, error)
	UpdatePost(ctx context.Context, id uint, changes repository.PostChanges) (repository.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name Sessions . Sessions
type Sessions interface {
	Establish(userID string) (string, error)
	Resolve(token string) (string, bool)
	Terminate(token string)
}
