// Package main provides the ltp-cli command line interface for ltp-go.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	ltp "github.com/BackendStack21/ltp-go"
	"github.com/BackendStack21/ltp-go/core"
	"github.com/BackendStack21/ltp-go/search"
)

const (
	version = "1.0.0"
	appName = "ltp-cli"
)

// OutputFormat represents the output format for results
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Configuration keys shared by flags, LTP_* environment variables and the
// config file.
const (
	keyConfig   = "config"
	keyPreset   = "preset"
	keyCapacity = "capacity"
	keyWorkers  = "workers"
	keyFormat   = "format"
	keyVerbose  = "verbose"
	keyTiming   = "timing"
)

// cli carries the state shared by every command of one root.
type cli struct {
	v      *viper.Viper
	log    *logrus.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer // interactive prompts
}

func main() {
	logger := newLogger(os.Stderr)
	root := newRootCmd(logger, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

func newRootCmd(logger *logrus.Logger, in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), log: logger, in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   appName,
		Short: "Left-truncatable prime generator",
		Long: `Computes left-truncatable primes: primes that stay prime while their
leading digit is removed, down to a single-digit prime.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "YAML configuration file")
	pf.String(keyPreset, string(core.PresetDefault), "Parameter preset: default, small")
	pf.Int(keyCapacity, 0, "Ring buffer slots (0 = preset default)")
	pf.Int(keyWorkers, 1, "Goroutines used to test candidates")
	pf.String(keyFormat, string(FormatText), "Output format: text, json, yaml")
	pf.Bool(keyVerbose, false, "Verbose logging")
	for _, key := range []string{keyConfig, keyPreset, keyCapacity, keyWorkers, keyFormat, keyVerbose} {
		_ = c.v.BindPFlag(key, pf.Lookup(key))
	}
	c.v.SetEnvPrefix("LTP")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.findCmd(),
		c.listCmd(),
		c.isPrimeCmd(),
		c.benchmarkCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) loadConfig() error {
	if path := c.v.GetString(keyConfig); path != "" {
		c.v.SetConfigFile(path)
		c.v.SetConfigType("yaml")
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		c.log.WithField("file", c.v.ConfigFileUsed()).Debug("config loaded")
	}
	if c.v.GetBool(keyVerbose) {
		c.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// params resolves the preset and applies the capacity override.
func (c *cli) params() (ltp.Params, error) {
	params, err := core.GetParams(core.Preset(c.v.GetString(keyPreset)))
	if err != nil {
		return ltp.Params{}, err
	}
	if capacity := c.v.GetInt(keyCapacity); capacity > 0 {
		params.Capacity = capacity
	}
	return params, nil
}

func (c *cli) engine() (*search.Engine, error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	workers := c.v.GetInt(keyWorkers)
	c.log.WithFields(logrus.Fields{
		"capacity":  params.Capacity,
		"max_index": params.MaxIndex,
		"workers":   workers,
	}).Debug("engine configured")
	return search.New(params, search.WithWorkers(workers))
}

// write renders v in the configured format; text is used for FormatText.
func (c *cli) write(v any, text func(w io.Writer) error) error {
	switch format := OutputFormat(strings.ToLower(c.v.GetString(keyFormat))); format {
	case FormatText, "":
		return text(c.out)
	case FormatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = c.out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
