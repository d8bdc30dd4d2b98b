package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hypercubers/rocket/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage solver defaults",
	Long:  `Commands for inspecting and creating the solver defaults file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	Long: `Create the config file with the built-in defaults so it can be edited.
Fails if the file already exists.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective solver defaults",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// resolveConfigPath returns the config file path from the flag or
// default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("max_depth:        %d\n", cfg.MaxDepth)
	fmt.Printf("cheap_moves:      %q\n", cfg.CheapMoves)
	fmt.Printf("sticker_notation: %v\n", cfg.StickerNotation)
	fmt.Printf("show_all:         %v\n", cfg.ShowAll)
	return nil
}
