package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/LyteFM/overlap-components/pkg/audit"
	"github.com/LyteFM/overlap-components/pkg/cache"
	"github.com/LyteFM/overlap-components/pkg/cache/rediscache"
	"github.com/LyteFM/overlap-components/pkg/config"
	"github.com/LyteFM/overlap-components/pkg/httpapi"
	"github.com/LyteFM/overlap-components/pkg/runner"
)

// serveCommand creates the "serve" command: starts the HTTP API (pkg/httpapi)
// on the given address, backed by a Redis result cache and (optionally) a
// MongoDB audit log. Defaults come from a TOML config file (pkg/config),
// overridden by flags when set.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		redisAddr  string
		mongoURI   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the overlap pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.ListenAddr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.Cache.RedisAddr = redisAddr
			}
			if cmd.Flags().Changed("mongo") {
				cfg.Audit.MongoURI = mongoURI
			}
			return c.runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file (overlap.toml); flags below override its values")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the result cache (empty disables caching)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for the audit log (empty disables auditing)")

	return cmd
}

func (c *CLI) runServe(cfg *config.Config) error {
	var resultCache cache.Cache = cache.NewNullCache()
	if cfg.Cache.RedisAddr != "" {
		resultCache = rediscache.New(cfg.Cache.RedisAddr)
		c.Logger.Infof("result cache: redis at %s", cfg.Cache.RedisAddr)
	}

	var store audit.Store
	if cfg.Audit.MongoURI != "" {
		var err error
		store, err = audit.NewMongoStore(context.Background(), cfg.Audit.MongoURI, cfg.Audit.Database, cfg.Audit.Collection)
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		c.Logger.Infof("audit log: mongo at %s", cfg.Audit.MongoURI)
	}

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
	r := runner.New(resultCache, keyer, store, c.Logger)
	handler := httpapi.New(&httpapi.API{Runner: r, Audit: store, Cache: resultCache, Keyer: keyer})

	c.Logger.Infof("listening on %s", cfg.Server.ListenAddr)
	return http.ListenAndServe(cfg.Server.ListenAddr, handler)
}
