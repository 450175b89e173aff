package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/odrh20/sapda/sapda"
	"github.com/odrh20/sapda/sapda/fixtures"
	"github.com/odrh20/sapda/sapda/load"
)

var runFlags = struct {
	file    *string
	fixture *string
	bfs     *bool
	timeout *time.Duration
	format  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run <input>",
		Short:   "Search for an accepting computation of an automaton on an input string",
		Example: `  sapda run --fixture anbncn "aabbcc"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRun,
	}
	runFlags.file = cmd.Flags().String("file", "", "path to a JSON automaton definition")
	runFlags.fixture = cmd.Flags().String("fixture", "", "name of a bundled reference automaton")
	runFlags.bfs = cmd.Flags().Bool("bfs", false, "search breadth-first instead of depth-first")
	runFlags.timeout = cmd.Flags().Duration("timeout", 10*time.Second, "search deadline")
	runFlags.format = cmd.Flags().String("format", "text", "output format: text or json")
	rootCmd.AddCommand(cmd)
}

var fixtureRegistry = map[string]func() (*sapda.Automaton, error){
	"anbncn":        fixtures.AnBnCn,
	"equalcounts":   fixtures.EqualCounts,
	"reduplication": fixtures.Reduplication,
	"powersoffour":  fixtures.PowersOfFour,
	"mirrororcopy":  fixtures.MirrorOrCopy,
	"anbn":          fixtures.AnBn,
}

func runRun(cmd *cobra.Command, args []string) error {
	input := args[0]

	a, err := loadAutomaton()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), *runFlags.timeout)
	defer cancel()

	var trace []string
	if *runFlags.bfs {
		trace = sapda.RunBFS(ctx, a, input)
	} else {
		trace = sapda.Run(ctx, a, input)
	}

	return writeResult(cmd, trace)
}

func loadAutomaton() (*sapda.Automaton, error) {
	switch {
	case *runFlags.file != "" && *runFlags.fixture != "":
		return nil, fmt.Errorf("sapda run: --file and --fixture are mutually exclusive")
	case *runFlags.file != "":
		f, err := os.Open(*runFlags.file)
		if err != nil {
			return nil, fmt.Errorf("sapda run: %w", err)
		}
		defer f.Close()
		return load.Automaton(f)
	case *runFlags.fixture != "":
		build, ok := fixtureRegistry[*runFlags.fixture]
		if !ok {
			return nil, fmt.Errorf("sapda run: unknown fixture %q", *runFlags.fixture)
		}
		return build()
	default:
		return nil, fmt.Errorf("sapda run: one of --file or --fixture is required")
	}
}

type runResult struct {
	Accepted bool     `json:"accepted"`
	TimedOut bool     `json:"timed_out"`
	Trace    []string `json:"trace,omitempty"`
}

func writeResult(cmd *cobra.Command, trace []string) error {
	result := runResult{Trace: trace}
	if len(trace) == 1 && trace[0] == "timeout" {
		result.TimedOut = true
		result.Trace = nil
	} else {
		result.Accepted = trace != nil
	}

	switch *runFlags.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		out := cmd.OutOrStdout()
		switch {
		case result.TimedOut:
			fmt.Fprintln(out, "timeout")
		case result.Accepted:
			for _, step := range result.Trace {
				fmt.Fprintln(out, step)
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "accepted")
		default:
			fmt.Fprintln(out, "rejected")
		}
		return nil
	default:
		return fmt.Errorf("sapda run: unknown format %q", *runFlags.format)
	}
}
