package pipeline

import (
	"context"
	"io"

	"github.com/matzehuels/brickstack/pkg/observability"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

// Verify reads a submission from r and checks it against the document's
// solution outline. The submission must have the solution grid's size.
func Verify(ctx context.Context, doc *puzzle.Document, r io.Reader) (bool, error) {
	want := doc.Solution.Grid
	sub, err := puzzle.ReadSubmission(r, want.Width, want.Height)
	if err != nil {
		return false, err
	}
	solved, err := puzzle.Verify(doc, sub)
	if err != nil {
		return false, err
	}
	observability.Pipeline().OnVerify(ctx, solved)
	return solved, nil
}
