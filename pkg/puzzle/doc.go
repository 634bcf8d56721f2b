// Package puzzle defines the serializable puzzle document and reads player
// submissions.
//
// # Document
//
// A [Document] captures everything derived from one generated structure:
// the placed pieces, their connections, one assembly page per connection
// (with and without the top brick), one silhouette per piece, and the
// oriented solution. Documents are the unit of caching and the input of
// every renderer, so they round-trip through JSON exactly:
//
//	doc, err := puzzle.Build(gen, puzzle.Options{Seed: seed})
//	data, err := puzzle.Marshal(doc)
//	doc2, err := puzzle.Unmarshal(data)
//
// Decoding validates against an embedded JSON schema before anything else.
//
// # Submissions
//
// [ReadSubmission] accepts either JSON ({"width":8,"height":8,"cells":[...]})
// or the text format: one line per row, highest row first, one palette
// symbol per cell (". R G B C M Y O P A K"). [Verify] compares a submission
// against the document's solution after centering both.
package puzzle
