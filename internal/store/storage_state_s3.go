// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/models"
)

const (
	statePrefix    = "_state"
	stateObjectExt = ".json"
)

// S3API is the subset of *s3.Client used by the S3 state storage.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// s3StateStorage stores every state version as a JSON object at
// _state/<name>/<version>.json inside a single bucket.
type s3StateStorage struct {
	client S3API
	bucket string
	logger *logger.Logger
}

// NewS3StateStorage constructs a [StateRepository] reading from bucket.
func NewS3StateStorage(client S3API, bucket string, log *logger.Logger) StateRepository {
	log.Debug().Str("bucket", bucket).Msg("creating s3 state storage")
	return &s3StateStorage{
		client: client,
		bucket: bucket,
		logger: log,
	}
}

// stateObjectKey returns the object key of a concrete state version.
func stateObjectKey(name, version string) string {
	return path.Join(statePrefix, name, version+stateObjectExt)
}

// GetState implements [StateRepository]. For [models.LastVersion] the object
// under _state/<name>/ with the newest LastModified wins.
func (s *s3StateStorage) GetState(ctx context.Context, name, version string) (models.State, error) {
	log := logger.FromContext(ctx)

	if version == models.LastVersion {
		latest, err := s.latestVersion(ctx, name)
		if err != nil {
			log.Err(err).Str("func", "*s3StateStorage.GetState").Str("name", name).Msg("error resolving latest version")
			return models.State{}, err
		}
		version = latest
	}

	key := stateObjectKey(name, version)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return models.State{}, fmt.Errorf("%w: %s@%s", ErrStateNotFound, name, version)
		}
		log.Err(err).Str("func", "*s3StateStorage.GetState").Str("key", key).Msg("error fetching state object")
		if sentinel := classifyS3Error(err); sentinel != nil {
			return models.State{}, fmt.Errorf("%w: %w", sentinel, err)
		}
		return models.State{}, fmt.Errorf("%w: %s: %w", ErrReadingObject, key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return models.State{}, fmt.Errorf("%w: %s: %w", ErrReadingObject, key, err)
	}
	if !json.Valid(payload) {
		log.Error().Str("func", "*s3StateStorage.GetState").Str("key", key).Msg("state object is not json")
		return models.State{}, fmt.Errorf("%w: %s", ErrInvalidPayload, key)
	}

	return models.State{
		Name:      name,
		Version:   version,
		Payload:   payload,
		UpdatedAt: aws.ToTime(out.LastModified),
	}, nil
}

// latestVersion lists _state/<name>/ and returns the version of the most
// recently modified object. Objects in nested prefixes are ignored.
func (s *s3StateStorage) latestVersion(ctx context.Context, name string) (string, error) {
	prefix := path.Join(statePrefix, name) + "/"
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var (
		latest     string
		latestTime time.Time
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if sentinel := classifyS3Error(err); sentinel != nil {
				return "", fmt.Errorf("%w: %w", sentinel, err)
			}
			return "", fmt.Errorf("%w: %s: %w", ErrListingObjects, prefix, err)
		}

		for _, obj := range page.Contents {
			rest := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if strings.Contains(rest, "/") || !strings.HasSuffix(rest, stateObjectExt) {
				continue
			}

			modified := aws.ToTime(obj.LastModified)
			if latest == "" || modified.After(latestTime) {
				latest = strings.TrimSuffix(rest, stateObjectExt)
				latestTime = modified
			}
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w: %s@%s", ErrStateNotFound, name, models.LastVersion)
	}

	return latest, nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
