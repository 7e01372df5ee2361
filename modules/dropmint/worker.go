package dropmint

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/archiver"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/pkg/logger"
	"github.com/dropforge/drop-engine/pkg/logger/slogx"
	"github.com/dropforge/drop-engine/pkg/reportingclient"
	"golang.org/x/sync/errgroup"
)

const (
	defaultArchiveInterval = 5 * time.Minute
	defaultReportInterval  = 1 * time.Hour
)

// Worker runs the module's background maintenance: the parquet event
// archive and the periodic usage report. Either half may be nil when
// disabled by configuration.
type Worker struct {
	dropMintDg      datagateway.DropMintDataGateway
	archiver        *archiver.Archiver
	reportingClient *reportingclient.ReportingClient
	network         common.Network
	archiveInterval time.Duration
	reportInterval  time.Duration
	cleanupFuncs    []func(context.Context) error

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func NewWorker(
	dropMintDg datagateway.DropMintDataGateway,
	archiver *archiver.Archiver,
	reportingClient *reportingclient.ReportingClient,
	network common.Network,
	archiveInterval time.Duration,
	reportInterval time.Duration,
	cleanupFuncs []func(context.Context) error,
) *Worker {
	if archiveInterval <= 0 {
		archiveInterval = defaultArchiveInterval
	}
	if reportInterval <= 0 {
		reportInterval = defaultReportInterval
	}
	return &Worker{
		dropMintDg:      dropMintDg,
		archiver:        archiver,
		reportingClient: reportingClient,
		network:         network,
		archiveInterval: archiveInterval,
		reportInterval:  reportInterval,
		cleanupFuncs:    cleanupFuncs,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (w *Worker) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *Worker) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.ShutdownWithContext(ctx)
}

func (w *Worker) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		select {
		case <-w.done:
		case <-time.After(180 * time.Second):
			err = errors.Wrap(errs.Timeout, "worker shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "worker shutdown context canceled")
		}
	})
	return
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.done)

	ctx = logger.WithContext(ctx, slogx.String("package", "dropmint"))

	archiveTicker := time.NewTicker(w.archiveInterval)
	defer archiveTicker.Stop()
	reportTicker := time.NewTicker(w.reportInterval)
	defer reportTicker.Stop()

	for {
		select {
		case <-w.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping worker")
			return errors.WithStack(w.cleanup(ctx))
		case <-ctx.Done():
			return errors.WithStack(w.cleanup(context.Background()))
		case <-archiveTicker.C:
			if err := w.archive(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to archive events", err)
			}
		case <-reportTicker.C:
			if err := w.submitStats(ctx); err != nil {
				logger.WarnContext(ctx, "Failed to submit drop stats", slogx.Error(err))
			}
		}
	}
}

// archive drains the unarchived backlog, batch by batch, until the
// archive is caught up.
func (w *Worker) archive(ctx context.Context) error {
	if w.archiver == nil {
		return nil
	}
	for {
		count, err := w.archiver.ArchiveOnce(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if count == 0 {
			return nil
		}
		logger.DebugContext(ctx, "Archived events", slogx.Int("count", count))
	}
}

func (w *Worker) submitStats(ctx context.Context) error {
	if w.reportingClient == nil {
		return nil
	}

	var dropCount, mintedTokens, eventCount int64
	group, groupctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		dropCount, err = w.dropMintDg.CountDrops(groupctx)
		return errors.WithStack(err)
	})
	group.Go(func() (err error) {
		mintedTokens, err = w.dropMintDg.CountMintedTokens(groupctx)
		return errors.WithStack(err)
	})
	group.Go(func() (err error) {
		eventCount, err = w.dropMintDg.CountEvents(groupctx)
		return errors.WithStack(err)
	})
	if err := group.Wait(); err != nil {
		return errors.Wrap(err, "failed to collect drop stats")
	}

	if err := w.reportingClient.SubmitDropStats(ctx, reportingclient.SubmitDropStatsPayload{
		Network:      w.network.String(),
		DropCount:    dropCount,
		MintedTokens: mintedTokens,
		EventCount:   eventCount,
	}); err != nil {
		return errors.Wrap(err, "failed to submit drop stats")
	}
	return nil
}

func (w *Worker) cleanup(ctx context.Context) error {
	for _, cleanup := range w.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to run cleanup", err)
		}
	}
	return nil
}
