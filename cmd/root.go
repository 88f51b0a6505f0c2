// Package cmd wires the command line to the pipeline: flag
// registration through internal/config, then the setup/run/shutdown
// sequence run_pipeline.cpp's RunPipeline follows, grounded on
// jjti-repp/cmd/root.go's rootCmd/Execute pattern.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hmmm42/lancetgo/internal/config"
)

var v = viper.New()

var configFile string

// rootCmd represents the base command when called without a
// subcommand; lancetgo has no subcommands, the whole pipeline runs off
// its flags.
var rootCmd = &cobra.Command{
	Use:     "lancetgo",
	Short:   "Colored de Bruijn micro-assembly somatic variant caller",
	Version: "0.1.0",
	RunE:    runPipeline,
}

func init() {
	if err := config.RegisterFlags(rootCmd.Flags(), v); err != nil {
		log.Fatalf("registering flags: %v", err)
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "optional YAML/TOML file of flag values; explicit flags still override it")
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
