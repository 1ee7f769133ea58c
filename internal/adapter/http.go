package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

type httpBlogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogClient builds a REST implementation of [BlogClient] for the
// server at cfg.ServerAddress. A scheme-less address is treated as http.
func NewHTTPBlogClient(cfg config.Client, logger *logger.Logger) (BlogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	c := &httpBlogClient{client: client, logger: logger}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [BlogClient]. It POSTs to /auth/register and keeps the
// access token from the 201 response.
func (h *httpBlogClient) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login implements [BlogClient]. It POSTs to /auth/login and keeps the access
// token from the response.
func (h *httpBlogClient) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpBlogClient) authenticate(ctx context.Context, path string, body any) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("path", path).Msg("token stored")

	return token, nil
}

func (h *httpBlogClient) Me(ctx context.Context) (models.User, error) {
	var user models.User

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := request.SetResult(&user).Get("/profile/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBlogClient) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	var user models.User

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Patch("/profile/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBlogClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpBlogClient) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	var post models.Post

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&post).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

// CreatePostWithImage implements [BlogClient]. The form carries title,
// content and published fields plus an optional "image" file part.
func (h *httpBlogClient) CreatePostWithImage(ctx context.Context, req models.CreatePostRequest, image *models.ImageUpload) (models.Post, error) {
	var post models.Post

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	fields := map[string]string{
		"title":   req.Title,
		"content": req.Content,
	}
	if req.Published != nil {
		fields["published"] = strconv.FormatBool(*req.Published)
	}

	resp, err := withMultipart(request, fields, image).
		SetResult(&post).
		Post("/posts/with-image")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post with image request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error) {
	var post models.Post

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&post).
		Patch("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

// UpdatePostWithImage implements [BlogClient]. Fields left nil in update are
// not sent, so the server keeps their stored values.
func (h *httpBlogClient) UpdatePostWithImage(ctx context.Context, id string, update models.PostUpdate, image *models.ImageUpload) (models.Post, error) {
	var post models.Post

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	fields := make(map[string]string)
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Published != nil {
		fields["published"] = strconv.FormatBool(*update.Published)
	}

	resp, err := withMultipart(request, fields, image).
		SetPathParam("id", id).
		SetResult(&post).
		Patch("/posts/with-image/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post with image request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) DeletePost(ctx context.Context, id string) (models.DeleteResult, error) {
	var result models.DeleteResult

	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.DeleteResult{}, err
	}

	resp, err := request.
		SetPathParam("id", id).
		SetResult(&result).
		Delete("/posts/{id}")
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete post request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (h *httpBlogClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BearerHeader(token)), nil
}

func withMultipart(request *resty.Request, fields map[string]string, image *models.ImageUpload) *resty.Request {
	request = request.SetMultipartFormData(fields)
	if image != nil {
		request = request.SetMultipartField("image", image.FileName, image.ContentType, image.Body)
	}
	return request
}
