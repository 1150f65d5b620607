package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/smhanov/xpression"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	registerFlags(pflag.CommandLine)
}

func registerFlags(f *pflag.FlagSet) {
	// Bind command-line flags
	f.String("backend", xpression.BackendTree, "Output backend: tree, elastic, document or sql")
	f.Bool("numbered", false, "Use $1..$n placeholders in SQL output")
	f.Bool("color", false, "Color error diagnostics")
	f.Bool("verbose", false, "Log every builder call")
	f.String("config", "", "Path to the configuration file")

	normalizeFunc := f.GetNormalizeFunc()
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})
}

// LoadConfig merges defaults, the optional config file, XPR_* environment
// variables and command-line flags, in increasing order of priority.
func LoadConfig(logger logrus.FieldLogger) (xpression.Config, error) {
	return loadConfig(viper.GetViper(), pflag.CommandLine, os.Args[1:], logger)
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet, args []string, logger logrus.FieldLogger) (xpression.Config, error) {
	cfg := xpression.DefaultConfig()

	// Set default values
	v.SetDefault("backend", cfg.Backend)
	v.SetEnvPrefix("XPR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Parse command-line flags
	if err := flags.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parsing command-line flags")
	}

	// Bind command-line flags to Viper
	if err := v.BindPFlags(flags); err != nil {
		return cfg, errors.Wrap(err, "binding command-line flags")
	}

	// Bind environment variables
	v.AutomaticEnv()

	// Read configuration file if specified
	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("xpr.conf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return cfg, errors.Wrapf(err, "reading config file %s", configFile)
		}
		logger.WithError(err).Debug("Using defaults and command line/environment options")
	}

	// Unmarshal configuration into struct
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to decode into struct")
	}

	return cfg, nil
}
