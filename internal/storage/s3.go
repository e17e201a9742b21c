// s3.go
//
// Pitch 2 Angels application portal: public pitch submissions and admin review service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pitch2angels-portal.
// pitch2angels-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pitch2angels-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pitch2angels-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
)

// S3Store keeps objects in an S3 compatible bucket
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     logger.Logger
}

// NewS3 creates an S3 store for the configured bucket
func NewS3(ctx context.Context, cfg *config.Config, log logger.Logger) (*S3Store, error) {
	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3ForcePathStyle
	})

	log.Info("s3 storage initialized", logger.Fields{
		"bucket": cfg.S3Bucket,
		"region": cfg.S3Region,
	})

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: s3BaseURL(cfg),
		log:     log.WithFields(logger.Fields{"component": "s3_storage"}),
	}, nil
}

// s3BaseURL is the public URL prefix objects are reachable under
func s3BaseURL(cfg *config.Config) string {
	if cfg.S3Endpoint != "" {
		endpoint := strings.TrimRight(cfg.S3Endpoint, "/")
		if cfg.S3ForcePathStyle {
			return endpoint + "/" + cfg.S3Bucket
		}
		scheme, host, found := strings.Cut(endpoint, "://")
		if !found {
			return "https://" + cfg.S3Bucket + "." + endpoint
		}
		return scheme + "://" + cfg.S3Bucket + "." + host
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}

// Name implements Store
func (s *S3Store) Name() string { return "s3" }

// Put implements Store
func (s *S3Store) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	start := time.Now()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.log.Error("failed to put object", logger.Fields{
			"bucket": s.bucket,
			"key":    key,
			"error":  err,
		})
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	s.log.Debug("object stored", logger.Fields{
		"bucket":      s.bucket,
		"key":         key,
		"size":        size,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return s.baseURL + "/" + key, nil
}

// Delete implements Store
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFoundError(err) {
			return ErrObjectNotFound
		}
		s.log.Error("failed to delete object", logger.Fields{
			"bucket": s.bucket,
			"key":    key,
			"error":  err,
		})
		return fmt.Errorf("failed to delete object: %w", err)
	}

	s.log.Debug("object deleted", logger.Fields{"bucket": s.bucket, "key": key})
	return nil
}

// KeyFromURL implements Store
func (s *S3Store) KeyFromURL(url string) (string, bool) {
	return trimBase(s.baseURL, url)
}

// Check implements Store
func (s *S3Store) Check(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	return nil
}

func buildAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var optFns []func(*awsconfig.LoadOptions) error

	if cfg.S3Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cfg.S3Region))
	}

	// Use static credentials if provided
	if cfg.S3AccessKeyID != "" && cfg.S3SecretKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, ""),
		))
	}

	// A buildable client keeps AWS_CA_BUNDLE working
	optFns = append(optFns, awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(30*time.Second)))

	return awsconfig.LoadDefaultConfig(ctx, optFns...)
}

func isNotFoundError(err error) bool {
	var nsk *s3types.NoSuchKey
	var nse *s3types.NotFound
	return errors.As(err, &nsk) || errors.As(err, &nse)
}
