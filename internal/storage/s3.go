// Package storage keeps uploaded resumes in S3 and hands out presigned URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appconfig "github.com/drjayaswal/biasbreaker-backend/config"
)

// S3Store uploads resume files and presigns download links.
type S3Store struct {
	log     *zap.SugaredLogger
	client  *s3.Client
	presign *s3.PresignClient
	cfg     appconfig.AWSConfig
}

// NewS3Store builds the S3 client with static credentials and retry settings.
func NewS3Store(ctx context.Context, log *zap.SugaredLogger, cfg appconfig.AWSConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Store{
		log:     log.Named("storage.s3"),
		client:  client,
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
	}, nil
}

// Upload stores file content under resumes/{uuid}-{filename} and returns the
// object key together with a presigned GET URL valid for the upload TTL.
func (s *S3Store) Upload(ctx context.Context, content []byte, filename, contentType string) (key, url string, err error) {
	key = fmt.Sprintf("resumes/%s-%s", uuid.New(), filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Errorw("failed to upload object", "error", err, "key", key)
		return "", "", fmt.Errorf("upload object: %w", err)
	}

	url, err = s.presignedURL(ctx, key, s.cfg.UploadURLTTL)
	if err != nil {
		return "", "", err
	}

	s.log.Infow("object uploaded", "key", key, "bytes", len(content))
	return key, url, nil
}

// SecureURL presigns a short-lived GET URL for an existing object.
func (s *S3Store) SecureURL(ctx context.Context, key string) (string, error) {
	return s.presignedURL(ctx, key, s.cfg.DownloadURLTTL)
}

func (s *S3Store) presignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		s.log.Errorw("failed to presign object", "error", err, "key", key)
		return "", fmt.Errorf("presign object: %w", err)
	}
	return req.URL, nil
}
