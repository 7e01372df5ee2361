package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common"
	"github.com/dropforge/drop-engine/modules/dropmint/config"
	"github.com/dropforge/drop-engine/pkg/logger"
	"github.com/dropforge/drop-engine/pkg/logger/slogx"
	"github.com/dropforge/drop-engine/pkg/middleware/requestcontext"
	"github.com/dropforge/drop-engine/pkg/middleware/requestlogger"
	"github.com/dropforge/drop-engine/pkg/reportingclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	cfg        = &Config{
		Logger: logger.Config{
			Output: "text",
		},
		Network: common.NetworkMainnet,
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		EnableModules: []string{common.ModuleDropMint.String()},
	}
)

type Config struct {
	Logger        logger.Config          `mapstructure:"logger"`
	Network       common.Network         `mapstructure:"network"`
	EnableModules []string               `mapstructure:"enable_modules"`
	APIOnly       bool                   `mapstructure:"api_only"`
	HTTPServer    HTTPServer             `mapstructure:"http_server"`
	Reporting     reportingclient.Config `mapstructure:"reporting"`
	Modules       Modules                `mapstructure:"modules"`
}

type HTTPServer struct {
	Port      int                   `mapstructure:"port"`
	RequestIP requestcontext.Config `mapstructure:"request_ip"`
	Logger    requestlogger.Config  `mapstructure:"logger"`
}

type Modules struct {
	DropMint config.Config `mapstructure:"dropmint"`
}

// BindPFlag binds a configuration key to a cobra/pflag flag.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("failed to bind flag to config", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given file (or ./config.yaml),
// with environment variable override. Subsequent calls return the
// already-parsed config.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(cfg); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *cfg
}

// Load returns the parsed configuration. Parse must have been called.
func Load() Config {
	return Parse("")
}
