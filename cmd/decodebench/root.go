/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sigs.k8s.io/decodebench"
)

const envPrefix = "DECODEBENCH"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"verbose":         "verbose",
	"conl-plugin":     "conl_plugin",
	"timeit-number":   "timeit_number",
	"timeit-repeat":   "timeit_repeat",
	"template-number": "template_number",
	"structured-out":  "structured_out",
	"exclude":         "exclude",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "decodebench",
		Short: "Compare the decoding speed of JSON, CONL, MAML, YAML and TOML libraries",
		Long: `Generates equivalent datasets in every supported format, checks that all
libraries decode them to the same data, and reports the fastest of several
timed decoding runs for each library.

Every flag can also be set with a DECODEBENCH_ environment variable
(for example DECODEBENCH_TEMPLATE_NUMBER) or in a config file.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			initLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
			if used := v.ConfigFileUsed(); used != "" {
				slog.Debug("Using config file", "path", used)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	defaults := decodebench.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("conl-plugin", "", "Use the Unmarshal function of the Go plugin at the specified path, rather than the linked CONL package")
	flags.Int("timeit-number", defaults.Number, "Number of times to load test data for each library per timed run")
	flags.Int("timeit-repeat", defaults.Repeat, "Number of times to measure performance of each library (min is reported)")
	flags.Int("template-number", defaults.TemplateNumber, "Number of times to concatenate the template for each language in creating the decoding dataset")
	flags.Bool("structured-out", false, "Print results as a single JSON record")
	flags.StringSlice("exclude", nil, "Library labels to leave out of the benchmark")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// initConfig reads in the config file and ENV variables if set. Variables
// from a .env file in the working directory are loaded first; a missing file
// is not an error.
func initConfig(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", cfgFile, err)
	}
	return nil
}

func loadConfig(v *viper.Viper) (decodebench.Config, error) {
	var cfg decodebench.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(w io.Writer, cfg decodebench.Config) error {
	descs := decodebench.Available(decodebench.Registry(cfg.CONLPlugin), cfg.Exclude)
	slog.Debug("Found libraries", "count", len(descs))

	if err := decodebench.CheckConsistency(descs); err != nil {
		return err
	}

	results, err := decodebench.Timer{}.Run(descs, cfg)
	if err != nil {
		return err
	}
	return decodebench.WriteReport(w, decodebench.NewReport(results, cfg), cfg.Structured)
}
