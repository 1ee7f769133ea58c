package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mani62/Blog-Backend/internal/adapter"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/mock"
	"github.com/mani62/Blog-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockBlogClient, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockBlogClient(gomock.NewController(t))
	out := &bytes.Buffer{}
	return NewApp(api, out, logger.Nop()), api, out
}

func TestRun_Login(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@x.io", Password: "pw"}).
		Return(models.Token{AccessToken: "tok"}, nil)

	err := app.Run(context.Background(), []string{"login", "-email", "a@x.io", "-password", "pw"})

	require.NoError(t, err)
	var token models.Token
	require.NoError(t, json.Unmarshal(out.Bytes(), &token))
	assert.Equal(t, "tok", token.AccessToken)
}

func TestRun_RegisterNameOnlyWhenGiven(t *testing.T) {
	app, api, _ := newTestApp(t)
	api.EXPECT().Register(gomock.Any(), models.RegisterRequest{Email: "a@x.io", Password: "pw"}).
		Return(models.Token{AccessToken: "tok"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "-email", "a@x.io", "-password", "pw"}))
}

func TestRun_UpdateMeSendsOnlySetFlags(t *testing.T) {
	app, api, _ := newTestApp(t)
	email := "new@x.io"
	api.EXPECT().UpdateMe(gomock.Any(), models.UpdateProfileRequest{Email: &email}).
		Return(models.User{ID: "u1", Email: email}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update-me", "-email", email}))
}

func TestRun_PostsUpdatePartial(t *testing.T) {
	app, api, _ := newTestApp(t)
	published := false
	api.EXPECT().UpdatePost(gomock.Any(), "p1", models.PostUpdate{Published: &published}).
		Return(models.Post{ID: "p1"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"posts", "update", "p1", "-published=false"}))
}

func TestRun_PostsCreateWithImage(t *testing.T) {
	app, api, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	api.EXPECT().CreatePostWithImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreatePostRequest, image *models.ImageUpload) (models.Post, error) {
			assert.Equal(t, "T", req.Title)
			assert.Equal(t, "cat.png", image.FileName)
			assert.Equal(t, "image/png", image.ContentType)
			body, err := io.ReadAll(image.Body)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(body))
			return models.Post{ID: "p1"}, nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"posts", "create", "-title", "T", "-content", "C", "-image", path}))
}

func TestRun_PostsDelete(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().DeletePost(gomock.Any(), "p1").Return(models.DeleteResult{Count: 0}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"posts", "delete", "p1"}))
	assert.JSONEq(t, `{"count":0}`, out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no command", args: nil, want: ErrMissingArgs},
		{name: "unknown command", args: []string{"shrug"}, want: ErrUnknownCommand},
		{name: "posts without subcommand", args: []string{"posts"}, want: ErrMissingArgs},
		{name: "unknown posts subcommand", args: []string{"posts", "archive"}, want: ErrUnknownCommand},
		{name: "get without id", args: []string{"posts", "get"}, want: ErrMissingArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.want)
		})
	}
}

func TestRun_APIErrorPassesThrough(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Me(gomock.Any()).Return(models.User{}, adapter.ErrNoToken)

	err := app.Run(context.Background(), []string{"me"})

	assert.ErrorIs(t, err, adapter.ErrNoToken)
	assert.Empty(t, out.String())
}
