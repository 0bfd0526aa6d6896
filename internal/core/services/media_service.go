package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
)

// s3ObjectPutter is the slice of the S3 client the media service needs.
type s3ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// mediaService stores uploaded files in an S3-compatible bucket (MinIO or
// AWS) and hands back a public URL.
type mediaService struct {
	cfg    *config.Config
	client s3ObjectPutter
}

// NewMediaService creates a media service backed by a real S3 client.
func NewMediaService(ctx context.Context, cfg *config.Config) (portssvc.MediaSvcFacade, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &mediaService{cfg: cfg, client: client}, nil
}

// newMediaServiceWithClient injects a client; used by tests.
func newMediaServiceWithClient(cfg *config.Config, client s3ObjectPutter) portssvc.MediaSvcFacade {
	return &mediaService{cfg: cfg, client: client}
}

// storageKey builds a date-partitioned random object key, keeping the
// original file extension so content type stays recoverable.
func storageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("media/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext)
}

// UploadFile puts the file at localPath into the bucket and returns its
// public URL. The caller owns removal of the local file.
func (s *mediaService) UploadFile(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload file: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	key := storageKey(ext)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return s.publicURL(key), nil
}

func (s *mediaService) publicURL(key string) string {
	if s.cfg.S3PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.S3PublicBaseURL, "/") + "/" + key
	}
	if s.cfg.S3Endpoint != "" {
		return strings.TrimRight(s.cfg.S3Endpoint, "/") + "/" + s.cfg.S3Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.S3Bucket, s.cfg.S3Region, key)
}
