package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/BruksfildServices01/renovation-marketplace/internal/config"
)

// S3Storage talks to AWS S3 or any S3-compatible endpoint (MinIO, R2,
// Supabase storage) using path-style addressing.
type S3Storage struct {
	client    *s3.Client
	publicURL string
}

func NewS3Storage(cfg config.S3Config) *S3Storage {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,

		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	base := cfg.PublicURL
	if base == "" {
		base = cfg.Endpoint
	}

	return &S3Storage{
		client:    s3.New(opts),
		publicURL: base,
	}
}

func (s *S3Storage) Put(ctx context.Context, obj Object) (string, error) {
	if !obj.Upsert {
		exists, err := s.exists(ctx, obj.Bucket, obj.Key)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrObjectExists
		}
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(obj.Bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(obj.Body),
		ContentType: aws.String(obj.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put %s/%s: %w", obj.Bucket, obj.Key, err)
	}

	return PublicURL(s.publicURL, obj.Bucket, obj.Key), nil
}

func (s *S3Storage) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Storage) exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}
	return false, fmt.Errorf("head %s/%s: %w", bucket, key, err)
}
