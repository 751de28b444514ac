package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scribe/internal/db"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrPostNotFound error = errors.New("post not found")
var ErrDuplicateUsername error = errors.New("username already taken")

// ErrEmptyField is wrapped with the offending field name, e.g. "title: ...".
var ErrEmptyField error = errors.New("must not be empty")

const listOrder = "created_at DESC, id DESC"

type BlogRepository struct {
	db Storage
}

func NewBlogRepository(db Storage) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Post{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BlogRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.CreateRecord(ctx, &user)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BlogRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BlogRepository) CreatePost(ctx context.Context, post Post) (Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	post.Author = strings.TrimSpace(post.Author)
	post.Content = strings.TrimSpace(post.Content)

	if post.Title == "" {
		return Post{}, fmt.Errorf("title: %w", ErrEmptyField)
	}
	if post.Author == "" {
		return Post{}, fmt.Errorf("author: %w", ErrEmptyField)
	}
	if post.Content == "" {
		return Post{}, fmt.Errorf("content: %w", ErrEmptyField)
	}

	if err := r.db.CreateRecord(ctx, &post); err != nil {
		return Post{}, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

func (r *BlogRepository) GetPost(ctx context.Context, id uint) (Post, error) {
	var post Post

	err := r.db.GetOneBy(ctx, "id", id, &post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}

	return post, nil
}

// ListPosts returns every post, newest-created first, ties broken by
// descending id.
func (r *BlogRepository) ListPosts(ctx context.Context) ([]Post, error) {
	posts := []Post{}

	err := r.db.GetAllOrdered(ctx, listOrder, &posts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// UpdatePost applies the non-nil fields of changes to the post and returns
// the full updated row. Supplying no fields is a valid no-op.
func (r *BlogRepository) UpdatePost(ctx context.Context, id uint, changes PostChanges) (Post, error) {
	fields, err := updateFields(changes)
	if err != nil {
		return Post{}, err
	}

	if len(fields) > 0 {
		rows, err := r.db.UpdateFields(ctx, &Post{}, id, fields)
		if err != nil {
			return Post{}, fmt.Errorf("update post: %w", err)
		}
		if rows == 0 {
			return Post{}, ErrPostNotFound
		}
	}

	return r.GetPost(ctx, id)
}

func (r *BlogRepository) DeletePost(ctx context.Context, id uint) error {
	rows, err := r.db.DeleteByID(ctx, &Post{}, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

func updateFields(changes PostChanges) (map[string]any, error) {
	fields := make(map[string]any)

	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		if title == "" {
			return nil, fmt.Errorf("title: %w", ErrEmptyField)
		}
		fields["title"] = title
	}
	if changes.Author != nil {
		author := strings.TrimSpace(*changes.Author)
		if author == "" {
			return nil, fmt.Errorf("author: %w", ErrEmptyField)
		}
		fields["author"] = author
	}
	if changes.Content != nil {
		content := strings.TrimSpace(*changes.Content)
		if content == "" {
			return nil, fmt.Errorf("content: %w", ErrEmptyField)
		}
		fields["content"] = content
	}

	return fields, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
