package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List the bundled reference automata available to --fixture",
		Args:  cobra.NoArgs,
		RunE:  runFixtures,
	}
	rootCmd.AddCommand(cmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(fixtureRegistry))
	for name := range fixtureRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		a, err := fixtureRegistry[name]()
		if err != nil {
			return fmt.Errorf("sapda fixtures: building %q: %w", name, err)
		}
		fmt.Fprintf(out, "%-14s %s\n", name, a.Name)
	}
	return nil
}
