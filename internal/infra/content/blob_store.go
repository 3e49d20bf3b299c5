// Package content stores project images and floor plans in a blob
// bucket addressed by projects/{id}/... keys.
package content

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"

	"atelier/config"
	"atelier/internal/domain/repository"
	"atelier/internal/errors"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// BucketParams holds dependencies for the content store, injected by Fx.
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Open dials the configured bucket URL (gs://, file://) and returns the
// ContentStore implementation. The bucket closes on shutdown.
func Open(params BucketParams) (repository.ContentStore, error) {
	cfg := params.Config
	if cfg.Content == nil {
		return nil, errors.New("content store configuration is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.Content.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Content.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return New(bucket, cfg.Content.PublicBaseURL, params.Logger), nil
}

// New wraps an already open bucket. Tests use this with memblob.
func New(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) repository.ContentStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.resolveURL(key), nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStore) DeletePrefix(ctx context.Context, prefix string) []repository.CleanupFailure {
	var failures []repository.CleanupFailure

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			s.logger.Error("listing bucket prefix failed", slog.String("prefix", prefix), slog.Any("error", err))
			failures = append(failures, repository.CleanupFailure{Key: prefix, Reason: err.Error()})

			break
		}

		if err := s.Delete(ctx, obj.Key); err != nil {
			s.logger.Error("deleting blob failed", slog.String("key", obj.Key), slog.Any("error", err))
			failures = append(failures, repository.CleanupFailure{Key: obj.Key, Reason: err.Error()})
		}
	}

	return failures
}

func (s *blobStore) KeyFromURL(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, s.publicBaseURL+"/") {
		return "", false
	}

	escaped := strings.TrimPrefix(rawURL, s.publicBaseURL+"/")
	segments := strings.Split(escaped, "/")
	for i, seg := range segments {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return "", false
		}
		segments[i] = decoded
	}

	return strings.Join(segments, "/"), true
}

// resolveURL builds the public URL, escaping each path segment so
// filenames with spaces stay fetchable.
func (s *blobStore) resolveURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}
