// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/mani62/Blog-Backend/internal/adapter"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/models"
)

const usage = `usage: blog-client [-s url] [-token t] <command> [args]

commands:
  register -email e -password p [-name n]
  login -email e -password p
  me
  update-me [-name n] [-email e]
  posts list
  posts get <id>
  posts create -title t -content c [-published] [-image file]
  posts update <id> [-title t] [-content c] [-published=true|false] [-image file]
  posts delete <id>
`

// App runs one client command per Run call.
type App struct {
	api    adapter.BlogClient
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.BlogClient, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Run executes the command named by args[0]. Results are written to the
// App's output as indented JSON.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage(ErrMissingArgs)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running client command")

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "me":
		return a.print(a.api.Me(ctx))
	case "update-me":
		return a.updateMe(ctx, args[1:])
	case "posts":
		return a.posts(ctx, args[1:])
	default:
		return a.usage(fmt.Errorf("%w: %q", ErrUnknownCommand, args[0]))
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{Email: *email, Password: *password}
	if isFlagSet(fs, "name") {
		req.Name = name
	}

	return a.print(a.api.Register(ctx, req))
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.print(a.api.Login(ctx, models.LoginRequest{Email: *email, Password: *password}))
}

func (a *App) updateMe(ctx context.Context, args []string) error {
	fs := newFlagSet("update-me")
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if isFlagSet(fs, "name") {
		req.Name = name
	}
	if isFlagSet(fs, "email") {
		req.Email = email
	}

	return a.print(a.api.UpdateMe(ctx, req))
}

func (a *App) posts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage(fmt.Errorf("%w: posts subcommand", ErrMissingArgs))
	}

	switch args[0] {
	case "list":
		return a.print(a.api.ListPosts(ctx))
	case "get":
		id, err := requireID(args[1:])
		if err != nil {
			return err
		}
		return a.print(a.api.GetPost(ctx, id))
	case "create":
		return a.createPost(ctx, args[1:])
	case "update":
		return a.updatePost(ctx, args[1:])
	case "delete":
		id, err := requireID(args[1:])
		if err != nil {
			return err
		}
		return a.print(a.api.DeletePost(ctx, id))
	default:
		return a.usage(fmt.Errorf("%w: posts %q", ErrUnknownCommand, args[0]))
	}
}

func (a *App) createPost(ctx context.Context, args []string) error {
	fs := newFlagSet("posts create")
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post content")
	published := fs.Bool("published", false, "publish immediately")
	imagePath := fs.String("image", "", "image file to attach")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.CreatePostRequest{Title: *title, Content: *content, Published: published}
	if *imagePath == "" {
		return a.print(a.api.CreatePost(ctx, req))
	}

	image, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	return a.print(a.api.CreatePostWithImage(ctx, req, image))
}

func (a *App) updatePost(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("posts update")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	published := fs.Bool("published", false, "published state")
	imagePath := fs.String("image", "", "replacement image file")
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}

	var update models.PostUpdate
	if isFlagSet(fs, "title") {
		update.Title = title
	}
	if isFlagSet(fs, "content") {
		update.Content = content
	}
	if isFlagSet(fs, "published") {
		update.Published = published
	}

	if *imagePath == "" {
		return a.print(a.api.UpdatePost(ctx, id, update))
	}

	image, closeImage, err := openImage(*imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	return a.print(a.api.UpdatePostWithImage(ctx, id, update, image))
}

func (a *App) print(result any, err error) error {
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (a *App) usage(err error) error {
	_, _ = fmt.Fprint(a.out, usage)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func requireID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: post id", ErrMissingArgs)
	}
	return args[0], nil
}

func openImage(path string) (*models.ImageUpload, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open image: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("stat image: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	image := &models.ImageUpload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Body:        file,
	}
	return image, func() { _ = file.Close() }, nil
}
