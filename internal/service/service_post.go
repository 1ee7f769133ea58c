// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

// postService implements PostService. Ownership of existing posts is never
// checked here with a separate read: the repository's UpdateOwned and
// DeleteOwned carry the author id into the statement itself.
type postService struct {
	postRepository store.PostRepository
	images         store.ImageStorage
	idGenerator    utils.IDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewPostService(
	postRepository store.PostRepository,
	images store.ImageStorage,
	idGenerator utils.IDGenerator,
	logger *logger.Logger,
) PostService {
	return &postService{
		postRepository: postRepository,
		images:         images,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

// Create stores the optional image first and then the post authored by
// principal. Published defaults to false.
func (p *postService) Create(ctx context.Context, principal models.Principal, request models.CreatePostRequest, image *models.ImageUpload) (models.Post, error) {
	log := logger.FromContext(ctx)

	if principal.UserID == "" {
		return models.Post{}, ErrUnauthorized
	}

	post := models.Post{
		ID:       p.idGenerator.Generate(),
		Title:    request.Title,
		Content:  request.Content,
		Image:    request.Image,
		AuthorID: principal.UserID,
	}
	if request.Published != nil {
		post.Published = *request.Published
	}

	if image != nil {
		imagePath, err := p.saveImage(ctx, *image)
		if err != nil {
			return models.Post{}, err
		}
		post.Image = &imagePath
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("func", "*postService.Create").Msg("post creation ended with error")
		p.discardImage(ctx, image, post.Image)
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	log.Info().Str("post_id", created.ID).Str("user_id", principal.UserID).Msg("post created")
	return created, nil
}

func (p *postService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPublishedPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.List").Msg("listing published posts failed")
		return nil, fmt.Errorf("listing published posts failed: %w", err)
	}

	return posts, nil
}

func (p *postService) Get(ctx context.Context, id string) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoPostWasFound) {
			return models.Post{}, ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*postService.Get").Str("post_id", id).Msg("post search failed")
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}

	return post, nil
}

// Update applies the present fields of update to the post only when
// principal authored it. A missing post and a post owned by someone else
// both yield ErrPostNotFoundOrForbidden. A freshly stored image is removed
// again when the update is rejected.
func (p *postService) Update(ctx context.Context, principal models.Principal, id string, update models.PostUpdate, image *models.ImageUpload) (models.Post, error) {
	log := logger.FromContext(ctx)

	if principal.UserID == "" {
		return models.Post{}, ErrUnauthorized
	}

	if image != nil {
		imagePath, err := p.saveImage(ctx, *image)
		if err != nil {
			return models.Post{}, err
		}
		update.Image = &imagePath
	}

	updated, err := p.postRepository.UpdateOwned(ctx, id, principal.UserID, update)
	if err != nil {
		p.discardImage(ctx, image, update.Image)
		if errors.Is(err, store.ErrNoPostWasFound) {
			log.Info().Str("func", "*postService.Update").Str("post_id", id).Str("user_id", principal.UserID).
				Msg("update rejected: post is missing or not owned by caller")
			return models.Post{}, ErrPostNotFoundOrForbidden
		}
		log.Err(err).Str("func", "*postService.Update").Str("post_id", id).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	log.Info().Str("post_id", id).Str("user_id", principal.UserID).Msg("post updated")
	return updated, nil
}

// Delete removes the post when principal authored it. Deleting a missing
// or foreign post is not an error and reports a count of 0.
func (p *postService) Delete(ctx context.Context, principal models.Principal, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	if principal.UserID == "" {
		return models.DeleteResult{}, ErrUnauthorized
	}

	count, err := p.postRepository.DeleteOwned(ctx, id, principal.UserID)
	if err != nil {
		log.Err(err).Str("func", "*postService.Delete").Str("post_id", id).Msg("post deletion ended with error")
		return models.DeleteResult{}, fmt.Errorf("post deletion ended with error: %w", err)
	}

	log.Info().Str("post_id", id).Str("user_id", principal.UserID).Int64("count", count).Msg("post delete handled")
	return models.DeleteResult{Count: count}, nil
}

func (p *postService) saveImage(ctx context.Context, image models.ImageUpload) (string, error) {
	name := p.imageName(image.FileName)

	imagePath, err := p.images.Save(ctx, name, image.Body)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.saveImage").Msg("image upload failed")
		return "", fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	return imagePath, nil
}

// discardImage removes an image stored during a rejected request. It is
// a no-op when no file was uploaded with the request.
func (p *postService) discardImage(ctx context.Context, image *models.ImageUpload, imagePath *string) {
	if image == nil || imagePath == nil {
		return
	}

	if err := p.images.Remove(ctx, *imagePath); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*postService.discardImage").
			Str("image", *imagePath).Msg("orphan image could not be removed")
	}
}

// imageName builds "image-<unixmillis>-<id><ext>" keeping only the
// lower-cased extension of the client file name.
func (p *postService) imageName(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("image-%d-%s%s", p.now().UnixMilli(), p.idGenerator.Generate(), ext)
}
