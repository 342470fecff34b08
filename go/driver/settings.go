// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/Fantom-foundation/Mockchain/go/processor"
	"github.com/Fantom-foundation/Mockchain/go/txcache"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// Settings are resolved from, in increasing priority, built-in defaults, a
// config file, MOCKCHAIN_ prefixed environment variables, and command line
// flags.

const envPrefix = "MOCKCHAIN"

const (
	configKey            = "config"
	logLevelKey          = "log-level"
	filterKey            = "filter"
	jobsKey              = "jobs"
	seedKey              = "seed"
	accountsKey          = "accounts"
	transactionsKey      = "txs"
	createMissingKey     = "create-missing-accounts"
	contractCacheSizeKey = "contract-cache-size"
)

var configFlag = &cli.StringFlag{
	Name:      configKey,
	Aliases:   []string{"c"},
	Usage:     "read settings from the given config file (json, yaml, toml)",
	TakesFile: true,
}

// logLevels lists the levels understood by log15.
var logLevels = []string{"debug", "info", "warn", "error", "crit"}

var logLevelFlag = &cli.StringFlag{
	Name:  logLevelKey,
	Usage: "log level, one of " + strings.Join(logLevels, ", "),
}

var filterFlag = &cli.StringFlag{
	Name:    filterKey,
	Aliases: []string{"f"},
	Usage:   "run only scenarios which name matches the given regex",
}

var jobsFlag = &cli.IntFlag{
	Name:    jobsKey,
	Aliases: []string{"j"},
	Usage:   "number of jobs run simultaneously",
}

var seedFlag = &cli.Uint64Flag{
	Name:    seedKey,
	Aliases: []string{"s"},
	Usage:   "seed for the random number generator",
}

var accountsFlag = &cli.IntFlag{
	Name:  accountsKey,
	Usage: "number of user accounts per world",
}

var transactionsFlag = &cli.IntFlag{
	Name:  transactionsKey,
	Usage: "number of transactions run per job",
}

var createMissingFlag = &cli.BoolFlag{
	Name:  createMissingKey,
	Usage: "create accounts unknown to the world when they receive funds",
}

var contractCacheSizeFlag = &cli.IntFlag{
	Name:  contractCacheSizeKey,
	Usage: "number of contract instances kept by the processor",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(filterKey, ".*")
	v.SetDefault(jobsKey, runtime.NumCPU())
	v.SetDefault(seedKey, 0)
	v.SetDefault(accountsKey, 8)
	v.SetDefault(transactionsKey, 1000)
	v.SetDefault(createMissingKey, false)
	v.SetDefault(contractCacheSizeKey, 128)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// getViper returns the settings of the current command invocation.
func getViper(context *cli.Context) (*viper.Viper, error) {
	v := newViper()
	if path := context.String(configKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	for key, get := range flagValues {
		if context.IsSet(key) {
			v.Set(key, get(context, key))
		}
	}
	return v, nil
}

// flagValues lists the getters of all flags overriding settings.
var flagValues = map[string]func(*cli.Context, string) any{
	logLevelKey:          func(c *cli.Context, key string) any { return c.String(key) },
	filterKey:            func(c *cli.Context, key string) any { return c.String(key) },
	jobsKey:              func(c *cli.Context, key string) any { return c.Int(key) },
	seedKey:              func(c *cli.Context, key string) any { return c.Uint64(key) },
	accountsKey:          func(c *cli.Context, key string) any { return c.Int(key) },
	transactionsKey:      func(c *cli.Context, key string) any { return c.Int(key) },
	createMissingKey:     func(c *cli.Context, key string) any { return c.Bool(key) },
	contractCacheSizeKey: func(c *cli.Context, key string) any { return c.Int(key) },
}

func processorConfig(v *viper.Viper) processor.Config {
	return processor.Config{
		ContractCacheSize: v.GetInt(contractCacheSizeKey),
		Cache: txcache.Config{
			CreateMissingAccounts: v.GetBool(createMissingKey),
		},
	}
}

func setupLogging(context *cli.Context) error {
	v, err := getViper(context)
	if err != nil {
		return err
	}
	level, err := log.LvlFromString(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(level, log.StreamHandler(os.Stderr, log.TerminalFormat())))
	return nil
}
