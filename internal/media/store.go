package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

// Stored identifies an uploaded object.
type Stored struct {
	Key string
	URL string
}

type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// NewS3Store builds a client from static credentials. A custom endpoint
// switches to path-style addressing for MinIO-like servers.
func NewS3Store(cfg S3Config, logger *zap.Logger) *S3Store {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		client:    s3.New(opts),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		logger:    logger,
	}
}

func (s *S3Store) Put(ctx context.Context, prefix string, img *Image) (*Stored, error) {
	key := fmt.Sprintf("%s/%s.webp", strings.Trim(prefix, "/"), uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentLength: aws.Int64(int64(len(img.Data))),
		ContentType:   aws.String("image/webp"),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		s.logger.Error("s3 upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("put object: %w", err)
	}

	s.logger.Info("s3 upload", zap.String("key", key), zap.Int("bytes", len(img.Data)))
	return &Stored{Key: key, URL: s.publicURL + "/" + key}, nil
}
