// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStorage_SaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage, err := NewLocalImageStorage(dir, "/uploads/", logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	publicPath, err := storage.Save(ctx, "image-1-abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-1-abc.png", publicPath)

	data, err := os.ReadFile(filepath.Join(dir, "image-1-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, storage.Remove(ctx, publicPath))
	_, err = os.Stat(filepath.Join(dir, "image-1-abc.png"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, storage.Remove(ctx, publicPath), ErrImageNotFound)
}

func TestLocalImageStorage_RejectsPathElements(t *testing.T) {
	storage, err := NewLocalImageStorage(t.TempDir(), "/uploads", logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	for _, name := range []string{"", ".", "..", "../evil.png", "a/b.png", `a\b.png`} {
		_, err := storage.Save(ctx, name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidImageName, "name %q", name)
	}

	for _, p := range []string{"/other/a.png", "/uploads/../a.png", "/uploads/"} {
		assert.ErrorIs(t, storage.Remove(ctx, p), ErrInvalidImageName, "path %q", p)
	}
}

func TestLocalImageStorage_NoOverwrite(t *testing.T) {
	storage, err := NewLocalImageStorage(t.TempDir(), "/uploads", logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = storage.Save(ctx, "a.png", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = storage.Save(ctx, "a.png", strings.NewReader("second"))
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestLocalImageStorage_WriteFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalImageStorage(dir, "/uploads", logger.Nop())
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "a.png", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3ImageStorage_SaveAndRemove(t *testing.T) {
	client := &fakeS3{}
	storage := newS3ImageStorage(client, config.S3{Bucket: "blog", PublicBaseURL: "https://cdn.example.com/"}, logger.Nop())

	ctx := context.Background()
	url, err := storage.Save(ctx, "image-1-abc.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/image-1-abc.jpg", url)

	require.Len(t, client.puts, 1)
	assert.Equal(t, "blog", aws.ToString(client.puts[0].Bucket))
	assert.Equal(t, "image-1-abc.jpg", aws.ToString(client.puts[0].Key))
	assert.Equal(t, "image/jpeg", aws.ToString(client.puts[0].ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(client.puts[0].ContentLength))
	assert.Equal(t, "jpeg", client.bodies[0])

	require.NoError(t, storage.Remove(ctx, url))
	require.Len(t, client.deletes, 1)
	assert.Equal(t, "image-1-abc.jpg", aws.ToString(client.deletes[0].Key))

	assert.ErrorIs(t, storage.Remove(ctx, "https://elsewhere/x.jpg"), ErrInvalidImageName)
}

func TestS3ImageStorage_ClientError(t *testing.T) {
	storage := newS3ImageStorage(&fakeS3{err: errors.New("denied")}, config.S3{Bucket: "blog", Region: "eu-west-1"}, logger.Nop())

	_, err := storage.Save(context.Background(), "a.png", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestS3PublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3
		want string
	}{
		{"configured", config.S3{Bucket: "b", PublicBaseURL: "https://cdn.x/img/"}, "https://cdn.x/img"},
		{"custom endpoint", config.S3{Bucket: "b", Endpoint: "http://127.0.0.1:9000/"}, "http://127.0.0.1:9000/b"},
		{"aws", config.S3{Bucket: "b", Region: "eu-west-1"}, "https://b.s3.eu-west-1.amazonaws.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3PublicBaseURL(tt.cfg))
		})
	}
}

func TestNewImageStorage_SelectsBackend(t *testing.T) {
	local, err := NewImageStorage(context.Background(), config.Images{Dir: t.TempDir(), PublicPath: "/uploads"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &localImageStorage{}, local)

	remote, err := NewImageStorage(context.Background(), config.Images{
		S3: config.S3{Bucket: "b", Region: "us-east-1", AccessKeyID: "k", SecretAccessKey: "s", Endpoint: "http://127.0.0.1:9000"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &s3ImageStorage{}, remote)
}
