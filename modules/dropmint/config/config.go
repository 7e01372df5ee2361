package config

import (
	"time"

	"github.com/dropforge/drop-engine/internal/postgres"
)

type Config struct {
	Postgres postgres.Config `mapstructure:"postgres"`
	Passes   PassesConfig    `mapstructure:"passes"`
	Archiver ArchiverConfig  `mapstructure:"archiver"`
}

// PassesConfig selects where discount-pass balances are read from.
// Source "store" reads balances recorded in the database; "ethereum"
// queries balanceOf on the pass contracts over JSON-RPC.
type PassesConfig struct {
	Source      string `mapstructure:"source"`
	EthereumRPC string `mapstructure:"ethereum_rpc"`
}

// ArchiverConfig controls the parquet event archive uploaded to S3 and
// the periodic stats report.
type ArchiverConfig struct {
	Disabled       bool          `mapstructure:"disabled"`
	Interval       time.Duration `mapstructure:"interval"`
	S3Bucket       string        `mapstructure:"s3_bucket"`
	S3Region       string        `mapstructure:"s3_region"`
	S3PathPrefix   string        `mapstructure:"s3_path_prefix"`
	BatchSize      int32         `mapstructure:"batch_size"`
	ReportInterval time.Duration `mapstructure:"report_interval"`
}
