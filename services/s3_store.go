package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vkosev/design-site-backend/config"
)

// S3Store is the real ImageStore: uploads land in an S3 bucket and the
// returned URL points at the public object.
type S3Store struct {
	client        *s3.Client
	bucket        string
	prefix        string
	publicBaseURL string
	logger        zerolog.Logger
}

func NewS3Store(ctx context.Context, bucket, prefix, publicBaseURL string) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3Store{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        bucket,
		prefix:        prefix,
		publicBaseURL: publicBaseURL,
		logger:        log.With().Str("service", "s3Store").Logger(),
	}, nil
}

func (s *S3Store) Store(ctx context.Context, filename string, contents io.Reader) (string, error) {
	key := path.Join(s.prefix, uuid.New().String()+filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   contents,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3: %w", filename, err)
	}

	s.logger.Info().Str("bucket", s.bucket).Str("key", key).Msg("uploaded project image")
	return s.publicBaseURL + "/" + key, nil
}

// NewImageStoreFromConfig picks the store implementation: S3 when
// S3_IMAGE_BUCKET is configured, the placeholder rotation otherwise.
func NewImageStoreFromConfig(ctx context.Context, cfg map[string]string) (ImageStore, error) {
	bucket := config.GetString(cfg, "S3_IMAGE_BUCKET", "")
	if bucket == "" {
		log.Warn().Msg("S3_IMAGE_BUCKET not set, image uploads will use placeholder URLs")
		return NewPlaceholderStore(), nil
	}
	return NewS3Store(ctx, bucket,
		config.GetString(cfg, "S3_IMAGE_PREFIX", "project-images"),
		config.GetString(cfg, "S3_PUBLIC_BASE_URL", ""))
}
