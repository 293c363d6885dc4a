package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journal.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer book.Close()

	book.Info("created department %s (%s)", "eng", "Engineering")
	book.Info("enrolled %s in %s", "sally", "Engineering")
	book.Warn("alias %q is already in use", "sally")

	lines := book.Tail(2)
	if len(lines) != 2 {
		t.Fatalf("Tail(2) returned %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "enrolled sally") {
		t.Fatalf("unexpected first tail line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") || !strings.Contains(lines[1], "sally") {
		t.Fatalf("unexpected second tail line: %q", lines[1])
	}
}

func TestTailLargerThanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer book.Close()

	book.Info("only entry")
	lines := book.Tail(10)
	if len(lines) != 1 {
		t.Fatalf("Tail(10) returned %d lines, want 1", len(lines))
	}
}

func TestTailOfEmptyJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer book.Close()

	if lines := book.Tail(5); lines != nil {
		t.Fatalf("expected nil tail for empty journal, got %v", lines)
	}
}

func TestAppendAfterCloseIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	book.Info("before close")
	if err := book.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	book.Info("after close")
	lines := book.Tail(10)
	if len(lines) != 1 || !strings.Contains(lines[0], "before close") {
		t.Fatalf("closed journal must not grow, got %v", lines)
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("nothing happens")
	if book.Tail(3) != nil {
		t.Fatalf("nil logbook must tail nothing")
	}
	if book.Path() != "" {
		t.Fatalf("nil logbook must have empty path")
	}
	if err := book.Close(); err != nil {
		t.Fatalf("nil close must be a no-op, got %v", err)
	}
}
