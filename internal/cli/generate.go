package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	"github.com/matzehuels/brickstack/pkg/pipeline"
)

// generateFlags holds the command-line flags for the generate command.
// A flag overrides the config file only when it was set explicitly.
type generateFlags struct {
	seed             uint64
	pieces           int
	width            int
	depth            int
	height           int
	palette          int
	allowPartial     bool
	fixedHeight      bool
	randomRotations  bool
	pageRotations    []string
	face             string
	solutionRotation string
	render           renderFlags
	refresh          bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle and write its artifacts",
		Example: `  brickstack generate --seed 7
  brickstack generate -n 6 --width 6 --depth 6 -f svg,png -o build/puzzle
  brickstack generate --face bottom --solution-rotation 90 -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.render.output == stdoutOutput {
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
			if err := f.apply(cmd.Flags(), &opts); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg, f.render.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Generating puzzle...")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			spinner.Stop()
			if err != nil {
				return err
			}

			doc := result.Document
			printSuccess("Generated puzzle %s", StyleHighlight.Render(shortID(doc.ID)))
			printStats(result.Stats, result.CacheInfo.PuzzleHit)
			if len(doc.Unplaced) > 0 {
				printWarning("%d of %d pieces could not be placed", len(doc.Unplaced), len(doc.Pieces)+len(doc.Unplaced))
			}

			base := f.render.output
			if base == "" {
				base = fmt.Sprintf("%s-%d", appName, doc.Seed)
			}
			if err := writeArtifacts(cmd.OutOrStdout(), base, opts.Formats, result.Artifacts); err != nil {
				return err
			}
			if base != stdoutOutput && slices.Contains(opts.Formats, pipeline.FormatJSON) {
				printNextStep("Solve it interactively", appName+" browse "+base+pipeline.Extension(pipeline.FormatJSON))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Uint64VarP(&f.seed, "seed", "s", 0, "random seed (0 picks the default seed)")
	fl.IntVarP(&f.pieces, "pieces", "n", 0, "number of pieces")
	fl.IntVar(&f.width, "width", 0, "structure width")
	fl.IntVar(&f.depth, "depth", 0, "structure depth")
	fl.IntVar(&f.height, "height", 0, "structure height")
	fl.IntVar(&f.palette, "palette", 0, "number of colors to draw from")
	fl.BoolVar(&f.allowPartial, "allow-partial", false, "keep the puzzle when some pieces cannot be placed")
	fl.BoolVar(&f.fixedHeight, "fixed-height", false, "never raise the structure height")
	fl.BoolVar(&f.randomRotations, "random-rotations", false, "rotate each piece display randomly")
	fl.StringSliceVar(&f.pageRotations, "page-rotations", nil, "page rotations cycled over the manual (0, 90, 180, 270 or north, west, south, east)")
	fl.StringVar(&f.face, "face", "", "solution face: top or bottom")
	fl.StringVar(&f.solutionRotation, "solution-rotation", "", "solution rotation: 0, 90, 180 or 270")
	fl.BoolVar(&f.refresh, "refresh", false, "regenerate even when the puzzle is cached")
	f.render.register(fl)

	return cmd
}

// apply copies explicitly set flags over opts.
func (f *generateFlags) apply(fl *pflag.FlagSet, opts *pipeline.Options) error {
	set := fl.Changed
	if set("seed") {
		opts.Seed = f.seed
	}
	if set("pieces") {
		opts.Pieces = f.pieces
	}
	if set("width") {
		opts.Width = f.width
	}
	if set("depth") {
		opts.Depth = f.depth
	}
	if set("height") {
		opts.Height = f.height
	}
	if set("palette") {
		opts.Palette = f.palette
	}
	if set("allow-partial") {
		opts.AllowPartial = f.allowPartial
	}
	if set("fixed-height") {
		opts.FixedHeight = f.fixedHeight
	}
	if set("random-rotations") {
		opts.RandomRotations = f.randomRotations
	}
	if set("page-rotations") {
		opts.PageRotations = opts.PageRotations[:0:0]
		for _, s := range f.pageRotations {
			r, err := grid.ParseRotation(s)
			if err != nil {
				return err
			}
			opts.PageRotations = append(opts.PageRotations, r)
		}
	}
	if set("face") {
		face, err := projection.ParseFace(f.face)
		if err != nil {
			return err
		}
		opts.Face = face
	}
	if set("solution-rotation") {
		r, err := grid.ParseRotation(f.solutionRotation)
		if err != nil {
			return err
		}
		opts.SolutionRotation = r
	}
	opts.Refresh = f.refresh
	f.render.apply(fl, opts)
	return nil
}

// shortID abbreviates a document ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
