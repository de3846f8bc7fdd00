/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nomen

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	api "github.com/nomenclatura/nomen/api"
	"github.com/nomenclatura/nomen/cmd/nomen/parse"
	"github.com/nomenclatura/nomen/cmd/nomen/repl"
)

var (
	Version        = api.Version
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "nomen",
		Short: "nomen parses scientific names into their components",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the nomen config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "compact", "Output format of results [compact, json, csv, text]")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent json output")
	rootCmd.PersistentFlags().Bool("with-authors", false, "Keep authorship in canonical names")
	rootCmd.PersistentFlags().Bool("with-cultivars", false, "Keep cultivar epithets in canonical names")

	// Bind viper config to the root flags
	viper.BindPFlag("nomen.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("nomen.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("output.pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	viper.BindPFlag("parser.with-authors", rootCmd.PersistentFlags().Lookup("with-authors"))
	viper.BindPFlag("parser.with-cultivars", rootCmd.PersistentFlags().Lookup("with-cultivars"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("nomen version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	parse.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(parse.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
