package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sentlab/sented/internal/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .sented.toml configuration file",
		Long: `Write a .sented.toml file with the default configuration so it can
be edited instead of passing flags on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefaultConfig(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the configuration file into")

	return cmd
}
