package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/pipeline"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

// errNotSolved makes the process exit non-zero for a wrong answer.
var errNotSolved = errors.New("submission does not match the solution")

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <puzzle.json> [submission]",
		Short: "Check a solution outline against a saved puzzle",
		Long: `Check a solution outline against a saved puzzle.

The submission is read from the file argument or from stdin. It is either a
grid JSON object or text with one row per line, highest row first, using the
palette symbols (". R G B C M Y O P A K"). Lines starting with '#' are
ignored. The outline may sit anywhere in the grid; it is centered before
comparing.`,
		Example: `  brickstack verify puzzle.json answer.txt
  cat answer.txt | brickstack verify puzzle.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := puzzle.ReadFile(args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != stdoutOutput {
				f, err := os.Open(args[1])
				if os.IsNotExist(err) {
					return bserrors.Wrap(bserrors.ErrCodeFileNotFound, err, "submission %s", args[1])
				}
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			solved, err := pipeline.Verify(cmd.Context(), doc, r)
			if err != nil {
				return err
			}
			if !solved {
				printError("Not solved")
				return errNotSolved
			}
			printSuccess("Solved puzzle %s", StyleHighlight.Render(shortID(doc.ID)))
			return nil
		},
	}
}
