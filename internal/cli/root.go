// Package cli implements the command-line interface for rocket.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hypercubers/rocket/internal/config"
	"github.com/Hypercubers/rocket/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Rubik's cube reorientation insertion optimizer",
	Long: `rocket finds ways to shorten a move sequence by inserting whole-cube
reorientations into it.

Give it an algorithm and it searches for the smallest number of
reorientations that, once inserted, let the remaining moves cancel down
to nothing (or to a single turn). Reorientations are scored by how
awkward they are to perform, so the cheapest insertions are reported
first.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rocket/rocket.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rocket/config.yaml)")
}

// loadConfig reads the config file from the flag or default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

// openDB opens the database from the flag or default location.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
