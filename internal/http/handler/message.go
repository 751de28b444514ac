package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// generic message for unexpected failures so internals never leak
const unexpectedErr = "unexpected error occurred"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// PostResponse is the serialized form of a post. The owning user's id rides
// along as author_id and is null for legacy posts without an owner.
type PostResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	AuthorID *string `json:"author_id"`
	Content  string  `json:"content"`
}
