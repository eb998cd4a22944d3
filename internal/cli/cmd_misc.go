package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "stats",
		Short:       "Show how many items are stored",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.rt.Stats.Stats(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printField(w, "Passwords", fmt.Sprint(stats.TotalPasswords))
			printField(w, "API keys", fmt.Sprint(stats.TotalAPIKeys))
			return nil
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Build version: %s\n", c.build.BuildVersion())
			fmt.Fprintf(w, "Build date: %s\n", c.build.BuildDate())
			fmt.Fprintf(w, "Build commit: %s\n", c.build.BuildCommit())
		},
	}
}
