// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
)

// s3ObjectAPI is the subset of *s3.Client used for images.
type s3ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ImageStorage stores images as objects in an S3-compatible bucket.
type s3ImageStorage struct {
	client        s3ObjectAPI
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3ImageStorage builds an S3 client from cfg. Static credentials are used
// when both keys are set, the default AWS credential chain otherwise. A
// custom endpoint (e.g. MinIO) switches to path-style addressing.
func NewS3ImageStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (ImageStorage, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ImageStorage").Msg("error loading AWS config")
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating S3 image storage")
	return newS3ImageStorage(client, cfg, log), nil
}

func newS3ImageStorage(client s3ObjectAPI, cfg config.S3, log *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: s3PublicBaseURL(cfg),
		logger:        log,
	}
}

// s3PublicBaseURL prefers the configured URL, then the path-style endpoint
// URL, then the virtual-hosted AWS URL.
func s3PublicBaseURL(cfg config.S3) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *s3ImageStorage) Save(ctx context.Context, name string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if !isPlainFileName(name) {
		return "", ErrInvalidImageName
	}

	// the SDK needs a seekable body to sign plain-HTTP endpoints
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("error reading image body: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType := mime.TypeByExtension(path.Ext(name)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ImageStorage.Save").Str("key", name).Msg("error uploading image")
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return s.publicBaseURL + "/" + name, nil
}

func (s *s3ImageStorage) Remove(ctx context.Context, publicPath string) error {
	key, ok := strings.CutPrefix(publicPath, s.publicBaseURL+"/")
	if !ok || !isPlainFileName(key) {
		return ErrInvalidImageName
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.Remove").Str("key", key).Msg("error deleting image")
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}
