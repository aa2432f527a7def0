package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "mutar.dev/pkg/mutar/internal/model"
	"mutar.dev/pkg/mutar/internal/rlang"
)

func TestLocalRFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalRFileAdapter()

	exampleFile := filepath.Join(examplePath(t, "basic"), "arith.R")
	content := readFileBytes(t, exampleFile)

	program, err := adapter.Parse(context.Background(), m.Path(exampleFile), content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(program.Statements) != 3 {
		t.Fatalf("Parse() statements = %d, want 3", len(program.Statements))
	}

	if len(program.Spans) != len(program.Statements) {
		t.Fatalf("Parse() spans = %d, want %d", len(program.Spans), len(program.Statements))
	}

	if program.Spans[0].StartLine != 2 || program.Spans[0].EndLine != 4 {
		t.Fatalf("Parse() first span = %s, want lines 2-4", program.Spans[0])
	}
}

func TestLocalRFileAdapter_Parse_InvalidSource(t *testing.T) {
	adapter := NewLocalRFileAdapter()

	exampleFile := filepath.Join(examplePath(t, "invalid"), "broken.R")

	_, err := adapter.Parse(context.Background(), m.Path(exampleFile), readFileBytes(t, exampleFile))
	if err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}

	var syntaxErr *rlang.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Parse() error = %v, want *rlang.SyntaxError", err)
	}

	if !strings.Contains(err.Error(), "broken.R") {
		t.Fatalf("Parse() error %q does not name the file", err)
	}
}

func TestLocalRFileAdapter_Parse_ContextCancellation(t *testing.T) {
	adapter := NewLocalRFileAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.Parse(ctx, "example.R", []byte("x <- 1\n")); err == nil {
		t.Fatalf("Parse() expected error due to context cancellation")
	}
}

func TestLocalRFileAdapter_Deparse(t *testing.T) {
	adapter := NewLocalRFileAdapter()

	program, err := adapter.Parse(context.Background(), "roundtrip.R", []byte("x<-a+b\ny <- x*2\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := string(adapter.Deparse(program.Statements))
	want := "x <- a + b\ny <- x * 2\n"

	if got != want {
		t.Fatalf("Deparse() = %q, want %q", got, want)
	}
}

func examplePath(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join("..", "..", "examples", name)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("example %s not available: %v", name, err)
	}

	return dir
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	return content
}
