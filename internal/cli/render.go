package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/pipeline"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

// stdoutOutput writes a single artifact to standard output.
const stdoutOutput = "-"

// renderFlags holds the output flags shared by generate and render.
type renderFlags struct {
	output   string
	formats  string
	cellSize float64
	columns  int
	hideTop  bool
	detailed bool
	noCache  bool
}

func (f *renderFlags) register(fl *pflag.FlagSet) {
	fl.StringVarP(&f.output, "output", "o", "", `output base path; extensions are added per format ("-" for stdout)`)
	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): txt, json, svg, png, pdf, dot, graph (comma-separated)")
	fl.Float64Var(&f.cellSize, "cell-size", 0, "cell edge in pixels for svg, png and pdf")
	fl.IntVar(&f.columns, "columns", 0, "panels per row for svg, png and pdf")
	fl.BoolVar(&f.hideTop, "hide-top", false, "draw manual pages without the brick being added")
	fl.BoolVar(&f.detailed, "detailed", false, "label assembly graph nodes with size and position")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply copies explicitly set flags over opts.
func (f *renderFlags) apply(fl *pflag.FlagSet, opts *pipeline.Options) {
	if fl.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if fl.Changed("cell-size") {
		opts.CellSize = f.cellSize
	}
	if fl.Changed("columns") {
		opts.Columns = f.columns
	}
	if fl.Changed("hide-top") {
		opts.HideTop = f.hideTop
	}
	if fl.Changed("detailed") {
		opts.Detailed = f.detailed
	}
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <puzzle.json>",
		Short: "Render a saved puzzle to other formats",
		Example: `  brickstack render puzzle.json -f svg,pdf
  brickstack render puzzle.json -f graph --detailed -o assembly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.output == stdoutOutput {
				statusOut = os.Stderr
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := optionsFromConfig(cfg)
			if err != nil {
				return err
			}
			f.apply(cmd.Flags(), &opts)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}

			doc, err := puzzle.ReadFile(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg, f.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			artifacts, hit, err := runner.RenderWithCacheInfo(cmd.Context(), doc, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))
			c.Logger.Debug("render cache", "hit", hit)

			base := f.output
			if base == "" {
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}
			return writeArtifacts(cmd.OutOrStdout(), base, opts.Formats, artifacts)
		},
	}

	f.register(cmd.Flags())
	return cmd
}

// writeArtifacts stores each artifact at base plus its format extension.
// A base of "-" streams a single artifact to w instead.
func writeArtifacts(w io.Writer, base string, formats []string, artifacts map[string][]byte) error {
	if base == stdoutOutput {
		if len(formats) != 1 {
			return bserrors.New(bserrors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(formats))
		}
		_, err := w.Write(artifacts[formats[0]])
		return err
	}

	if err := bserrors.ValidateFilename(filepath.Base(base)); err != nil {
		return err
	}
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, format := range formats {
		path := base + pipeline.Extension(format)
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
