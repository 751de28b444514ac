package core

import "time"

type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PostRecord struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	OwnerID   *string   `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"-"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PostMessage struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// PostUpdate carries a partial update; nil fields are left unchanged.
type PostUpdate struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Content *string `json:"content"`
}
