package payload

import (
	"scribe/internal/core"

	"github.com/jellydator/validation"
)

type CreatePostRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

func (c CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Author, validation.Required),
		validation.Field(&c.Content, validation.Required),
	)
}

func (c CreatePostRequest) ToMessage() core.PostMessage {
	return core.PostMessage{
		Title:   c.Title,
		Author:  c.Author,
		Content: c.Content,
	}
}

// UpdatePostRequest is a partial update; absent fields stay unchanged.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Content *string `json:"content"`
}

func (u UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
		validation.Field(&u.Author, validation.NilOrNotEmpty),
		validation.Field(&u.Content, validation.NilOrNotEmpty),
	)
}

func (u UpdatePostRequest) ToUpdate() core.PostUpdate {
	return core.PostUpdate{
		Title:   u.Title,
		Author:  u.Author,
		Content: u.Content,
	}
}
