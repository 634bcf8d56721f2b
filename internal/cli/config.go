package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/brickstack/pkg/config"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

const defaultConfigFile = appName + ".toml"

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings.

The format follows the extension: .toml (default), .yaml or .yml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return bserrors.New(bserrors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			cfg.Puzzle.Shapes = cfg.Catalog()
			if err := config.WriteFile(cfg, path); err != nil {
				return err
			}

			printSuccess("Wrote %s", path)
			printKeyValue("pieces", strconv.Itoa(cfg.Puzzle.Pieces))
			printKeyValue("size", fmt.Sprintf("%dx%dx%d", cfg.Puzzle.Width, cfg.Puzzle.Depth, cfg.Puzzle.Height))
			printNextStep("Use it", appName+" generate --config "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
