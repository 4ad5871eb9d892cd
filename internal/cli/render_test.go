package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRunOverlapRenderWritesSVG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "family.txt")
	if err := os.WriteFile(input, []byte("0 1 2 -1 1 2 3 -1"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	output := filepath.Join(dir, "out.svg")

	c := &CLI{Logger: log.New(os.Stderr)}
	if err := c.runOverlapRender(input, output); err != nil {
		t.Fatalf("runOverlapRender: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty SVG output")
	}
}

func TestRunOverlapRenderDefaultsOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "family.txt")
	if err := os.WriteFile(input, []byte("0 1 -1"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	c := &CLI{Logger: log.New(os.Stderr)}
	if err := c.runOverlapRender(input, ""); err != nil {
		t.Fatalf("runOverlapRender: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "family.svg")); err != nil {
		t.Fatalf("expected default output file: %v", err)
	}
}

func TestRenderCommandRegistersOutputFlag(t *testing.T) {
	c := &CLI{Logger: log.New(os.Stderr)}
	cmd := c.renderCommand()
	if cmd.Flags().Lookup("output") == nil {
		t.Fatal("expected an --output flag")
	}
	if cmd.Use != "render FILE" {
		t.Fatalf("Use = %q", cmd.Use)
	}
}
