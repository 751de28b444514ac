package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"scribe/internal/core"
	"scribe/internal/http/handler/middleware"
	"scribe/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register   = "POST /api/register"
	Login      = "POST /api/login"
	Logout     = "POST /api/logout"
	ListPosts  = "GET /api/posts"
	GetPost    = "GET /api/posts/{id}"
	CreatePost = "POST /api/posts"
	UpdatePost = "PUT /api/posts/{id}"
	DeletePost = "DELETE /api/posts/{id}"
	Health     = "GET /api/health"
)

type BlogHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	blog             BlogService
	cookieName       string
}

func NewBlogHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, blogService BlogService, cookieName string) *BlogHandler {
	return &BlogHandler{
		logs:             logger,
		requestValidator: requestValidator,
		blog:             blogService,
		cookieName:       cookieName,
	}
}

func (h *BlogHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, token, err := h.blog.Register(r.Context(), req.ToCredentials())
	if err != nil {
		h.respondError(w, err, "Could not register", Register, requestId)
		return
	}

	h.setSessionCookie(w, token)

	resp := map[string]core.UserRecord{
		"user": user,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *BlogHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, token, err := h.blog.Login(r.Context(), req.ToCredentials())
	if err != nil {
		h.respondError(w, err, "Login failed", Login, requestId)
		return
	}

	h.setSessionCookie(w, token)

	resp := map[string]core.UserRecord{
		"user": user,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.blog.Logout(h.sessionToken(r))
	h.clearSessionCookie(w)

	h.respond(w, Response{
		Message: "logged out",
	}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		h.respondError(w, err, "Could not retrieve posts", ListPosts, requestId)
		return
	}

	resp := map[string][]PostResponse{
		"posts": toPostResponses(posts),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := postID(r)
	if err != nil {
		h.respondError(w, core.ErrPostNotFound, "Could not retrieve post", GetPost, requestId)
		return
	}

	post, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "Could not retrieve post", GetPost, requestId)
		return
	}

	resp := map[string]PostResponse{
		"post": toPostResponse(post),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreatePostRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create post",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreatePost,
			"request_id", requestId)
		return
	}

	post, err := h.blog.CreatePost(r.Context(), h.sessionToken(r), req.ToMessage())
	if err != nil {
		h.respondError(w, err, "Could not create post", CreatePost, requestId)
		return
	}

	resp := map[string]PostResponse{
		"post": toPostResponse(post),
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *BlogHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := postID(r)
	if err != nil {
		h.respondError(w, core.ErrPostNotFound, "Could not update post", UpdatePost, requestId)
		return
	}

	var req payload.UpdatePostRequest
	err = h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update post",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdatePost,
			"request_id", requestId)
		return
	}

	post, err := h.blog.UpdatePost(r.Context(), h.sessionToken(r), id, req.ToUpdate())
	if err != nil {
		h.respondError(w, err, "Could not update post", UpdatePost, requestId)
		return
	}

	resp := map[string]PostResponse{
		"post": toPostResponse(post),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := postID(r)
	if err != nil {
		h.respondError(w, core.ErrPostNotFound, "Could not delete post", DeletePost, requestId)
		return
	}

	if err := h.blog.DeletePost(r.Context(), h.sessionToken(r), id); err != nil {
		h.respondError(w, err, "Could not delete post", DeletePost, requestId)
		return
	}

	h.respond(w, Response{
		Message: "post deleted",
	}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{
		Message: "ok",
	}, http.StatusOK, requestID(r))
}

func (h *BlogHandler) respondError(w http.ResponseWriter, err error, message, route, requestId string) {
	httpCode := statusForError(err)

	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if httpCode == http.StatusInternalServerError {
		resp.Error = unexpectedErr
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *BlogHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *BlogHandler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *BlogHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *BlogHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrDuplicateUsername):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidCredentials), errors.Is(err, core.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func postID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse post id: %w", err)
	}
	return uint(id), nil
}

func toPostResponse(post core.PostRecord) PostResponse {
	return PostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Author:   post.Author,
		AuthorID: post.OwnerID,
		Content:  post.Content,
	}
}

func toPostResponses(posts []core.PostRecord) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toPostResponse(post)
	}
	return responses
}
