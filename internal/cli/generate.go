package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/layout"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output        string // output file path; empty writes to stdout
	overlapReport bool   // append a cell-level overlap scan to the output
	compact       bool   // emit compact JSON instead of indented
}

// generateCommand creates the generate command: config file in, cells out.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <config>",
		Short: "Generate positioned, labeled cells from a layout config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.overlapReport, "overlap-report", false, "include a cell overlap scan in the output")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "emit compact JSON")

	return cmd
}

// generateOutput is the JSON document produced by the generate command.
type generateOutput struct {
	layout.Result
	Overlaps *layout.OverlapReport `json:"overlaps,omitempty"`
}

func (c *CLI) runGenerate(cmd *cobra.Command, path string, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result := layout.Generate(cfg)
	prog.done(fmt.Sprintf("Generated %d cells", len(result.Cells)))

	out := generateOutput{Result: result}
	if opts.overlapReport {
		rep := layout.DetectOverlaps(result.Cells, cfg.MinSpacing)
		out.Overlaps = &rep
		if rep.HasOverlaps {
			printWarning("%d overlapping cell pair(s) remain", rep.Count)
		}
	}

	var data []byte
	if opts.compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, append(data, '\n'), 0644); err != nil {
		return err
	}
	printSuccess("Wrote %d cells", len(result.Cells))
	printDetail("File: %s", opts.output)
	return nil
}
