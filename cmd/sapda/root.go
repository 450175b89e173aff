package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sapda",
	Short: "Run and inspect synchronised alternating pushdown automata",
	Long: `sapda provides two features:
- Runs a synchronised alternating pushdown automaton against an input
  string, searching for an accepting computation.
- Lists the reference automata bundled with the engine, by name and
  description, for use with run --fixture.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
