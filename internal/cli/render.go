package cli

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/cache"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/render/svg"
)

// renderCacheTTL bounds how long a rendered seat map stays cached.
const renderCacheTTL = 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path
	labels    bool   // draw seat labels
	margin    float64
	noCache   bool
	redisAddr string
}

// renderCommand creates the render command for producing SVG seat maps.
// Rendered output is memoized by config hash: generation itself is pure
// and stateless, so caching lives here on the renderer side.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{labels: true, margin: 20}

	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Render a layout config as an SVG seat map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: config name with .svg)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw seat labels")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "frame margin in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared render cache (host:port)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	store, err := c.newCache(cmd, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer store.Close()

	// Render options participate in the key: changing them must miss.
	keyInput, _ := json.Marshal(struct {
		Config layout.Config `json:"config"`
		Labels bool          `json:"labels"`
		Margin float64       `json:"margin"`
	}{cfg, opts.labels, opts.margin})
	key := cache.Key("svg", keyInput)

	data, hit, err := store.Get(cmd.Context(), key)
	if err != nil {
		// Cache failures are non-fatal; rendering continues.
		printError("Cache read failed: %v", err)
	}

	var doc []byte
	if hit {
		logger.Debug("render cache hit", "key", key)
		doc = data
	} else {
		prog := newProgress(logger)
		result := layout.Generate(cfg)

		renderOptions := []svg.Option{
			svg.WithMargin(opts.margin),
			svg.WithObjects(result.Objects),
		}
		if opts.labels {
			renderOptions = append(renderOptions, svg.WithLabels())
		}
		doc = svg.Render(result.Cells, renderOptions...)
		prog.done("Rendered seat map")

		if err := store.Set(cmd.Context(), key, doc, renderCacheTTL); err != nil {
			logger.Debug("render cache store failed", "err", err)
		}
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, ".toml")
		out = strings.TrimSuffix(out, ".json") + ".svg"
	}
	if err := os.WriteFile(out, doc, 0644); err != nil {
		return err
	}

	printSuccess("Rendered seat map")
	printDetail("File: %s", out)
	return nil
}
