package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// explicitFlags returns the set of flags the user set on the command
// line, used to decide which config file values to override.
func explicitFlags(cmd *cobra.Command) map[string]bool {
	set := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			set[f.Name] = true
		})
	}
	return set
}
