package hls

import (
	"context"
	"log/slog"
	"path"
	"regexp"

	"masjidcast/config"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.ts$`)

// StoreParams holds dependencies for the playback store
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket *blob.Bucket
}

// NewPlaybackStore opens hls.bucketUrl and closes it on stop
func NewPlaybackStore(params StoreParams) (service.PlaybackStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.HLS.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.HLS.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("[HLS] Playback bucket opened", slog.String("url", params.Config.HLS.BucketURL))

	return NewBucketStore(bucket), nil
}

// NewBucketStore serves playback assets from an already opened bucket
func NewBucketStore(bucket *blob.Bucket) service.PlaybackStore {
	return &bucketStore{bucket: bucket}
}

// Open returns the playlist or a segment of a broadcast.
func (s *bucketStore) Open(ctx context.Context, broadcastID uuid.UUID, file string) (*service.PlaybackAsset, error) {
	contentType, ok := assetContentType(file)
	if !ok {
		return nil, domainerrors.ErrAssetNotFound.WithDetails(file)
	}

	reader, err := s.bucket.NewReader(ctx, path.Join(broadcastID.String(), file), nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrAssetNotFound.WithDetails(file)
		}

		return nil, errors.Wrapf(err, "open %s", file)
	}

	return &service.PlaybackAsset{
		Body:        reader,
		ContentType: contentType,
		Size:        reader.Size(),
	}, nil
}

func assetContentType(file string) (string, bool) {
	switch {
	case file == PlaylistFile:
		return "application/vnd.apple.mpegurl", true
	case segmentPattern.MatchString(file):
		return "video/mp2t", true
	default:
		return "", false
	}
}
