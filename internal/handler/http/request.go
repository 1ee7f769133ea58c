// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/mani62/Blog-Backend/models"
)

const (
	maxJSONBodySize = 1 << 20

	formFieldTitle     = "title"
	formFieldContent   = "content"
	formFieldPublished = "published"
	formFieldImage     = "image"
)

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

// multipartRequest holds a parsed multipart post form. Close must be called
// once the upload has been consumed.
type multipartRequest struct {
	form  *multipart.Form
	file  multipart.File
	image *models.ImageUpload
}

// parseMultipart parses the request as a multipart form limited to
// maxUploadSize bytes. The "image" file part is optional.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) (*multipartRequest, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}

	req := &multipartRequest{form: r.MultipartForm}

	file, header, err := r.FormFile(formFieldImage)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		req.Close()
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}

	req.file = file
	req.image = &models.ImageUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	return req, nil
}

// value returns the first value of a form field and whether it was sent.
func (m *multipartRequest) value(key string) (string, bool) {
	values, ok := m.form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// createRequest reads the create-post fields. Only the literal "true"
// publishes the post.
func (m *multipartRequest) createRequest() models.CreatePostRequest {
	title, _ := m.value(formFieldTitle)
	content, _ := m.value(formFieldContent)
	published, _ := m.value(formFieldPublished)

	isPublished := published == "true"
	return models.CreatePostRequest{
		Title:     title,
		Content:   content,
		Published: &isPublished,
	}
}

// update reads the fields present in the form. Absent fields stay nil and
// leave the stored value unchanged.
func (m *multipartRequest) update() models.PostUpdate {
	var update models.PostUpdate
	if title, ok := m.value(formFieldTitle); ok {
		update.Title = &title
	}
	if content, ok := m.value(formFieldContent); ok {
		update.Content = &content
	}
	if published, ok := m.value(formFieldPublished); ok {
		isPublished := published == "true"
		update.Published = &isPublished
	}
	return update
}

func (m *multipartRequest) Close() {
	if m.file != nil {
		_ = m.file.Close()
	}
	if m.form != nil {
		_ = m.form.RemoveAll()
	}
}
