// Package blob provides the BlobStore implementation backed by a
// gocloud.dev bucket. The bucket driver is selected by the configured URL
// scheme (file://, s3://, gs://, mem://).
package blob

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"bitefeed/config"
	"bitefeed/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

type bucketBlobStore struct {
	bucket    *blob.Bucket
	urlPrefix string
	logger    *slog.Logger
}

// Params holds dependencies for the BlobStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns a BlobStore bound to it.
func NewBlobStore(params Params) (service.BlobStore, error) {
	cfg := params.Config.Blob
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("blob bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return bucket.Close()
		},
	})

	return &bucketBlobStore{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
		logger:    params.Logger,
	}, nil
}

// Upload writes the bytes under the given key and returns the public URL.
// The write is all-or-nothing: gocloud buckets only materialize the object
// once the writer is closed successfully.
func (s *bucketBlobStore) Upload(ctx context.Context, data []byte, name string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("refusing to store an empty object")
	}

	opts := &blob.WriterOptions{
		ContentType: http.DetectContentType(data),
	}

	if err := s.bucket.WriteAll(ctx, name, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", name)
	}

	s.logger.Debug("stored blob object",
		slog.String("name", name),
		slog.Int("bytes", len(data)),
	)

	return s.urlPrefix + "/" + name, nil
}
