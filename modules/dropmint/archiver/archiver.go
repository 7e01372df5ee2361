// Package archiver exports the drop event log as parquet files on S3.
// Objects are keyed by event id range, so re-uploading after a restart
// overwrites identical data instead of duplicating it.
package archiver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/modules/dropmint/config"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/pkg/parquetutils"
	"github.com/samber/lo"
)

const defaultBatchSize = 1000

type Archiver struct {
	dropMintDg datagateway.DropMintDataGateway
	uploader   *manager.Uploader
	bucket     string
	prefix     string
	batchSize  int32

	// lastID is the highest archived event id. It resets on restart;
	// the id-range object keys make the re-upload idempotent.
	lastID int64
}

func New(ctx context.Context, conf config.ArchiverConfig, dropMintDg datagateway.DropMintDataGateway) (*Archiver, error) {
	if conf.S3Bucket == "" {
		return nil, errors.New("archiver s3 bucket is required")
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}
	s3Client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if conf.S3Region != "" {
			o.Region = conf.S3Region
		}
	})
	batchSize := conf.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Archiver{
		dropMintDg: dropMintDg,
		uploader:   manager.NewUploader(s3Client),
		bucket:     conf.S3Bucket,
		prefix:     conf.S3PathPrefix,
		batchSize:  batchSize,
	}, nil
}

type eventRow struct {
	ID        int64  `parquet:"name=id, type=INT64"`
	DropID    int64  `parquet:"name=drop_id, type=INT64"`
	Type      string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Caller    string `parquet:"name=caller, type=BYTE_ARRAY, convertedtype=UTF8"`
	Payload   string `parquet:"name=payload, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedAt int64  `parquet:"name=created_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// ArchiveOnce uploads the next batch of unarchived events and returns
// how many were written. A zero count means the archive is caught up.
func (a *Archiver) ArchiveOnce(ctx context.Context) (int, error) {
	events, err := a.dropMintDg.GetEventsAfter(ctx, datagateway.GetEventsAfterParams{
		AfterID: a.lastID,
		Limit:   a.batchSize,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get events")
	}
	if len(events) == 0 {
		return 0, nil
	}

	rows := lo.Map(events, func(event entity.DropEvent, _ int) eventRow {
		return eventRow{
			ID:        event.ID,
			DropID:    event.DropID,
			Type:      string(event.Type),
			Caller:    event.Caller,
			Payload:   string(event.Payload),
			CreatedAt: event.CreatedAt.UnixMilli(),
		}
	})
	data, err := parquetutils.WriteAll(rows)
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode events")
	}

	firstID, lastID := events[0].ID, events[len(events)-1].ID
	key := fmt.Sprintf("%sevents-%012d-%012d.parquet", a.prefix, firstID, lastID)
	if _, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}); err != nil {
		return 0, errors.Wrapf(err, "failed to upload %q", key)
	}

	a.lastID = lastID
	return len(events), nil
}
