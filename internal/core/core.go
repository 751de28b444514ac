package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scribe/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrDuplicateUsername error = errors.New("username already taken")
var ErrPostNotFound error = errors.New("post not found")
var ErrUnauthenticated error = errors.New("authentication required")
var ErrForbidden error = errors.New("not allowed to modify this post")
var ErrValidation error = errors.New("validation failed")

// Blog orchestrates credentials, sessions and post storage, and enforces the
// ownership rules via Authorize before every mutation.
type Blog struct {
	logs     *zap.SugaredLogger
	repo     Repository
	sessions Sessions
}

func NewBlog(logger *zap.SugaredLogger, repo Repository, sessions Sessions) *Blog {
	return &Blog{
		logs:     logger,
		repo:     repo,
		sessions: sessions,
	}
}

// Register creates a user with a bcrypt-hashed password and establishes a
// session for it. The password is hashed verbatim so Login verifies with the
// exact string used here; trimming applies to the username only.
func (b *Blog) Register(ctx context.Context, creds Credentials) (UserRecord, string, error) {
	username := strings.TrimSpace(creds.Username)

	if username == "" {
		return UserRecord{}, "", fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if strings.TrimSpace(creds.Password) == "" {
		return UserRecord{}, "", fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := b.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserRecord{}, "", ErrDuplicateUsername
		}
		return UserRecord{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := b.sessions.Establish(user.ID)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("establish session: %w", err)
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", username)

	return UserRecord{ID: user.ID, Username: username}, token, nil
}

// Login verifies the credentials and establishes a fresh session. Unknown
// username and wrong password collapse to the same error so the response
// does not reveal which one was wrong.
func (b *Blog) Login(ctx context.Context, creds Credentials) (UserRecord, string, error) {
	user, err := b.repo.GetUserByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, "", ErrInvalidCredentials
		}
		return UserRecord{}, "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return UserRecord{}, "", ErrInvalidCredentials
	}

	token, err := b.sessions.Establish(user.ID)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("establish session: %w", err)
	}

	b.logs.Infow("user logged in", "userId", user.ID)

	return UserRecord{ID: user.ID, Username: user.Username}, token, nil
}

// Logout terminates the session bound to the token, if any.
func (b *Blog) Logout(token string) {
	b.sessions.Terminate(token)
}

func (b *Blog) ListPosts(ctx context.Context) ([]PostRecord, error) {
	posts, err := b.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return postsToRecords(posts), nil
}

func (b *Blog) GetPost(ctx context.Context, id uint) (PostRecord, error) {
	post, err := b.repo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("get post: %w", err)
	}

	return postToRecord(post), nil
}

// CreatePost stores a new post attributed to the session's user.
func (b *Blog) CreatePost(ctx context.Context, token string, msg PostMessage) (PostRecord, error) {
	actorID, _ := b.sessions.Resolve(token)

	if decision := Authorize(OpCreate, actorID, PostRecord{}); !decision.Allowed {
		b.logs.Infow("post creation denied", "reason", decision.Reason)
		return PostRecord{}, b.decisionError(decision)
	}

	post, err := b.repo.CreatePost(ctx, repository.Post{
		Title:   msg.Title,
		Author:  msg.Author,
		Content: msg.Content,
		OwnerID: &actorID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmptyField) {
			return PostRecord{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return PostRecord{}, fmt.Errorf("create post: %w", err)
	}

	b.logs.Infow("post created", "postId", post.ID, "userId", actorID)

	return postToRecord(post), nil
}

// UpdatePost applies a partial update to a post owned by the session's user.
func (b *Blog) UpdatePost(ctx context.Context, token string, id uint, upd PostUpdate) (PostRecord, error) {
	actorID, _ := b.sessions.Resolve(token)

	target, err := b.GetPost(ctx, id)
	if err != nil {
		return PostRecord{}, err
	}

	if decision := Authorize(OpUpdate, actorID, target); !decision.Allowed {
		b.logs.Infow("post update denied", "postId", id, "userId", actorID, "reason", decision.Reason)
		return PostRecord{}, b.decisionError(decision)
	}

	post, err := b.repo.UpdatePost(ctx, id, repository.PostChanges{
		Title:   upd.Title,
		Author:  upd.Author,
		Content: upd.Content,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmptyField) {
			return PostRecord{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("update post: %w", err)
	}

	b.logs.Infow("post updated", "postId", id, "userId", actorID)

	return postToRecord(post), nil
}

// DeletePost removes a post owned by the session's user.
func (b *Blog) DeletePost(ctx context.Context, token string, id uint) error {
	actorID, _ := b.sessions.Resolve(token)

	target, err := b.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if decision := Authorize(OpDelete, actorID, target); !decision.Allowed {
		b.logs.Infow("post deletion denied", "postId", id, "userId", actorID, "reason", decision.Reason)
		return b.decisionError(decision)
	}

	if err := b.repo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}

	b.logs.Infow("post deleted", "postId", id, "userId", actorID)

	return nil
}

func (b *Blog) decisionError(decision Decision) error {
	if decision.Reason == ReasonUnauthenticated {
		return ErrUnauthenticated
	}
	return ErrForbidden
}

func postToRecord(post repository.Post) PostRecord {
	return PostRecord{
		ID:        post.ID,
		Title:     post.Title,
		Author:    post.Author,
		OwnerID:   post.OwnerID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
}

func postsToRecords(posts []repository.Post) []PostRecord {
	records := make([]PostRecord, len(posts))
	for i, post := range posts {
		records[i] = postToRecord(post)
	}
	return records
}
