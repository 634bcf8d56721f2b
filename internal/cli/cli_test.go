package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/brickstack/pkg/config"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/pipeline"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/sink"
)

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(envConfig, "")

	old := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = old })

	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func testDocument(t *testing.T) *puzzle.Document {
	t.Helper()
	opts := pipeline.Options{Seed: 7, Pieces: 5, AllowPartial: true}
	if err := opts.ValidateForGenerate(); err != nil {
		t.Fatal(err)
	}
	doc, _, err := pipeline.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return doc
}

// generateFile writes a puzzle document into dir and returns its path.
func generateFile(t *testing.T, dir string) string {
	t.Helper()
	base := filepath.Join(dir, "puzzle")
	if _, err := runCLI(t, "generate", "--seed", "7", "-n", "5", "--allow-partial", "-f", "json,txt", "-o", base); err != nil {
		t.Fatalf("generate: %v", err)
	}
	return base + ".json"
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty keeps default", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and blanks", " txt, ,json ", []string{"txt", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Puzzle.Seed = 9
	cfg.Pages.Rotations = []string{"90", "south"}
	cfg.Solution.Face = "bottom"
	cfg.Solution.Rotation = "270"
	cfg.Render.HideTop = true

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("optionsFromConfig: %v", err)
	}
	if opts.Seed != 9 {
		t.Errorf("Seed = %d, want 9", opts.Seed)
	}
	if len(opts.PageRotations) != 2 || opts.PageRotations[0] != grid.Rot90 || opts.PageRotations[1] != grid.Rot180 {
		t.Errorf("PageRotations = %v, want [90 180]", opts.PageRotations)
	}
	if opts.Face != projection.Bottom {
		t.Errorf("Face = %v, want bottom", opts.Face)
	}
	if opts.SolutionRotation != grid.Rot270 {
		t.Errorf("SolutionRotation = %v, want 270", opts.SolutionRotation)
	}
	if !opts.HideTop {
		t.Error("HideTop should carry over from [render]")
	}

	cfg.Solution.Face = "sideways"
	if _, err := optionsFromConfig(cfg); err == nil {
		t.Error("expected error for unknown face")
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	path := generateFile(t, dir)

	doc, err := puzzle.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if doc.Seed != 7 {
		t.Errorf("Seed = %d, want 7", doc.Seed)
	}
	if got := len(doc.Pieces) + len(doc.Unplaced); got != 5 {
		t.Errorf("document has %d pieces, want 5", got)
	}

	txt, err := os.ReadFile(filepath.Join(dir, "puzzle.txt"))
	if err != nil {
		t.Fatalf("text artifact: %v", err)
	}
	if len(txt) == 0 {
		t.Error("text artifact is empty")
	}
}

func TestGenerateCommandStdout(t *testing.T) {
	out, err := runCLI(t, "generate", "--seed", "3", "-n", "4", "--allow-partial", "-f", "dot", "-o", "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("stdout should hold the dot artifact, got %q", out[:min(len(out), 40)])
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"generate", "-f", "gif", "-o", "-"}},
		{"bad face", []string{"generate", "--face", "left", "-o", "-"}},
		{"bad rotation", []string{"generate", "--solution-rotation", "45", "-o", "-"}},
		{"too many pieces", []string{"generate", "-n", "11", "-o", "-"}},
		{"two formats to stdout", []string{"generate", "-n", "3", "--allow-partial", "-f", "txt,json", "-o", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	path := generateFile(t, dir)

	if _, err := runCLI(t, "render", path, "-f", "svg,dot", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"puzzle.svg", "puzzle.dot"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	if _, err := runCLI(t, "render", filepath.Join(dir, "missing.json")); !bserrors.Is(err, bserrors.ErrCodeFileNotFound) {
		t.Errorf("missing input error = %v, want %s", err, bserrors.ErrCodeFileNotFound)
	}
}

func TestShowCommand(t *testing.T) {
	path := generateFile(t, t.TempDir())

	out, err := runCLI(t, "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Puzzle", "Step 1/", "Solution"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q", want)
		}
	}

	out, err = runCLI(t, "show", path, "--solution")
	if err != nil {
		t.Fatalf("show --solution: %v", err)
	}
	if strings.Contains(out, "Step 1/") {
		t.Error("--solution should print only the solution")
	}

	if _, err := runCLI(t, "show", path, "--page", "99"); !bserrors.Is(err, bserrors.ErrCodeInvalidInput) {
		t.Errorf("out of range page error = %v, want %s", err, bserrors.ErrCodeInvalidInput)
	}
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	path := generateFile(t, dir)
	doc, err := puzzle.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Shift the outline to the opposite corner; placement must not matter.
	sol := doc.Solution.Grid
	box, ok := grid.BoundingBox(sol)
	if !ok {
		t.Fatal("solution is empty")
	}
	shifted := grid.Translate(sol, -box.MinX, -box.MinY)

	answer := filepath.Join(dir, "answer.txt")
	text := "# my answer\n" + sink.FormatGrid(shifted) + "\n"
	if err := os.WriteFile(answer, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "verify", path, answer); err != nil {
		t.Errorf("verify(correct answer) = %v", err)
	}

	blank := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(blank, []byte(sink.FormatGrid(grid.New(sol.Width, sol.Height))), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "verify", path, blank); !errors.Is(err, errNotSolved) {
		t.Errorf("verify(blank) = %v, want errNotSolved", err)
	}

	if _, err := runCLI(t, "verify", path, filepath.Join(dir, "nope.txt")); !bserrors.Is(err, bserrors.ErrCodeFileNotFound) {
		t.Errorf("verify(missing) = %v, want %s", err, bserrors.ErrCodeFileNotFound)
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brickstack.yaml")

	if _, err := runCLI(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Puzzle.Pieces != config.Default().Puzzle.Pieces {
		t.Errorf("Pieces = %d, want default", cfg.Puzzle.Pieces)
	}

	if _, err := runCLI(t, "config", "init", path); !bserrors.Is(err, bserrors.ErrCodeInvalidPath) {
		t.Errorf("second init error = %v, want %s", err, bserrors.ErrCodeInvalidPath)
	}
	if _, err := runCLI(t, "config", "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "brickstack.toml")
	cfg := config.Default()
	cfg.Puzzle.Seed = 11
	cfg.Puzzle.Pieces = 4
	cfg.Puzzle.AllowPartial = true
	cfg.Render.Formats = []string{"json"}
	if err := config.WriteFile(cfg, cfgPath); err != nil {
		t.Fatal(err)
	}

	base := filepath.Join(dir, "out")
	if _, err := runCLI(t, "--config", cfgPath, "generate", "--seed", "12", "-o", base); err != nil {
		t.Fatalf("generate: %v", err)
	}
	doc, err := puzzle.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("config formats should produce json: %v", err)
	}
	if doc.Seed != 12 {
		t.Errorf("Seed = %d, want flag value 12", doc.Seed)
	}
	if got := len(doc.Pieces) + len(doc.Unplaced); got != 4 {
		t.Errorf("pieces = %d, want config value 4", got)
	}
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "brickstack.prom")
	if _, err := runCLI(t, "--metrics-file", metrics, "generate", "-n", "3", "--allow-partial", "-f", "txt", "-o", "-"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	if !strings.Contains(string(data), "brickstack_") {
		t.Errorf("metrics file should contain brickstack metrics, got %q", data)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q, should end with %q", out, appName)
	}
}

func TestRenderGrid(t *testing.T) {
	g := grid.New(3, 2)
	g.Set(0, 0, 1)
	g.Set(2, 1, 4)

	out := renderGrid(g)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("renderGrid has %d lines, want 2", len(lines))
	}
	if got := strings.Count(out, cellFilled); got != 2 {
		t.Errorf("filled cells = %d, want 2", got)
	}
	if !strings.HasSuffix(lines[0], cellFilled) {
		t.Errorf("top row %q should end with a filled cell", lines[0])
	}
}

func TestBrowseModel(t *testing.T) {
	doc := testDocument(t)
	var m tea.Model = newBrowseModel(doc)

	key := func(s string) tea.KeyMsg {
		switch s {
		case "right":
			return tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			return tea.KeyMsg{Type: tea.KeyLeft}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	index := func() int { return m.(browseModel).index }

	m, _ = m.Update(key("left"))
	if index() != 0 {
		t.Errorf("left on first screen moved to %d", index())
	}
	if !strings.Contains(m.View(), "Pieces") {
		t.Error("first screen should show the pieces")
	}

	m, _ = m.Update(key("right"))
	if index() != 1 {
		t.Errorf("right moved to %d, want 1", index())
	}

	m, _ = m.Update(key("t"))
	if !m.(browseModel).hideTop {
		t.Error("t should hide the new brick")
	}

	m, _ = m.Update(key("G"))
	last := len(doc.Pages) + 1
	if index() != last {
		t.Errorf("G moved to %d, want %d", index(), last)
	}
	if !strings.Contains(m.View(), "Solution") {
		t.Error("last screen should show the solution")
	}

	m, _ = m.Update(key("right"))
	if index() != last {
		t.Errorf("right past the end moved to %d", index())
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}
