package dropmint

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/core/worker"
	"github.com/dropforge/drop-engine/internal/config"
	"github.com/dropforge/drop-engine/internal/postgres"
	"github.com/dropforge/drop-engine/modules/dropmint/api"
	"github.com/dropforge/drop-engine/modules/dropmint/archiver"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	"github.com/dropforge/drop-engine/modules/dropmint/passsource"
	repository "github.com/dropforge/drop-engine/modules/dropmint/repository/postgres"
	"github.com/dropforge/drop-engine/pkg/entropy"
	"github.com/dropforge/drop-engine/pkg/logger"
	"github.com/dropforge/drop-engine/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

const Version = "v0.0.1"

func New(injector do.Injector) (worker.Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	reportingClient := do.MustInvoke[*reportingclient.ReportingClient](injector)
	moduleConf := conf.Modules.DropMint

	pg, err := postgres.NewPool(ctx, moduleConf.Postgres)
	if err != nil {
		if errors.Is(err, errs.InvalidArgument) {
			return nil, errors.Wrap(err, "invalid Postgres configuration")
		}
		return nil, errors.Wrap(err, "can't create Postgres connection pool")
	}
	var cleanupFuncs []func(context.Context) error
	cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
		pg.Close()
		return nil
	})
	repo := repository.NewRepository(pg)

	var passes passsource.Source
	switch strings.ToLower(moduleConf.Passes.Source) {
	case "", "store":
		passes = passsource.NewStoreSource(repo)
	case "ethereum":
		passes, err = passsource.NewEthereumSource(ctx, moduleConf.Passes.EthereumRPC)
		if err != nil {
			return nil, errors.Wrap(err, "can't connect to Ethereum RPC")
		}
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q pass source is not supported", moduleConf.Passes.Source)
	}

	dropMintEngine := engine.NewEngine(repo, passes, entropy.NewWeakSource())

	// Mount API
	httpServer := do.MustInvoke[*fiber.App](injector)
	httpHandler := api.NewHTTPHandler(conf.Network, dropMintEngine)
	if err := httpHandler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount DropMint API")
	}
	logger.InfoContext(ctx, "Mounted HTTP handler")

	var eventArchiver *archiver.Archiver
	if !moduleConf.Archiver.Disabled {
		eventArchiver, err = archiver.New(ctx, moduleConf.Archiver, repo)
		if err != nil {
			return nil, errors.Wrap(err, "can't create event archiver")
		}
	}

	return NewWorker(
		repo,
		eventArchiver,
		reportingClient,
		conf.Network,
		moduleConf.Archiver.Interval,
		moduleConf.Archiver.ReportInterval,
		cleanupFuncs,
	), nil
}
