package handler

import (
	"context"
	"net/http"

	"scribe/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BlogService . BlogService
type BlogService interface {
	Register(ctx context.Context, creds core.Credentials) (core.UserRecord, string, error)
	Login(ctx context.Context, creds core.Credentials) (core.UserRecord, string, error)
	Logout(token string)
	ListPosts(ctx context.Context) ([]core.PostRecord, error)
	GetPost(ctx context.Context, id uint) (core.PostRecord, error)
	CreatePost(ctx context.Context, token string, msg core.PostMessage) (core.PostRecord, error)
	UpdatePost(ctx context.Context, token string, id uint, upd core.PostUpdate) (core.PostRecord, error)
	DeletePost(ctx context.Context, token string, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
