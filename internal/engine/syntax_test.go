package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBufferKeepsSyntaxInStep(t *testing.T) {
	b := New(WithContent("fn main() {}"), WithLanguage("rust"))
	defer b.Close()

	s := b.Syntax()
	if s == nil {
		t.Fatal("expected a syntax synchronizer")
	}
	first := func() string {
		return s.Root().NamedChild(0).Child(0).Type()
	}
	if got := first(); got != "fn" {
		t.Fatalf("first child = %q, want fn", got)
	}

	if err := b.Insert(0, "pub "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := first(); got != "visibility_modifier" {
		t.Errorf("after insert = %q, want visibility_modifier", got)
	}

	if _, err := b.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := first(); got != "fn" {
		t.Errorf("after undo = %q, want fn", got)
	}

	if _, err := b.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := first(); got != "visibility_modifier" {
		t.Errorf("after redo = %q, want visibility_modifier", got)
	}
}

func TestBufferSyntaxErrors(t *testing.T) {
	b := New(WithContent("func main() {}\n"), WithLanguage("go"))
	defer b.Close()

	if b.Syntax().HasError() {
		t.Fatal("valid source reported errors")
	}
	if err := b.Insert(b.Len(), "func {"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !b.Syntax().HasError() {
		t.Error("broken source reported no errors")
	}
	if _, err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.Syntax().HasError() {
		t.Error("errors remain after undo")
	}
}

func TestOpenDetectsLanguage(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"main.rs", "rust"},
		{"main.go", "go"},
		{"script.PY", "python"},
		{"notes.xyz", ""},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			b, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer b.Close()

			var got string
			if s := b.Syntax(); s != nil {
				got = s.Language()
			}
			if got != tt.want {
				t.Errorf("language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSaveAsDetectsLanguage(t *testing.T) {
	dir := t.TempDir()
	b := New(WithContent("fn main() {}"))
	defer b.Close()

	if b.Syntax() != nil {
		t.Fatal("untitled buffer should have no synchronizer")
	}
	if err := b.SaveAs(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if b.Syntax() != nil {
		t.Fatal("no grammar for .txt, want no synchronizer")
	}
	if err := b.SaveAs(filepath.Join(dir, "main.rs")); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	s := b.Syntax()
	if s == nil || s.Language() != "rust" {
		t.Fatalf("Syntax() = %v, want a rust synchronizer", s)
	}

	if err := b.Insert(0, "pub "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := s.Root().NamedChild(0).Child(0).Type(); got != "visibility_modifier" {
		t.Errorf("after insert = %q, want visibility_modifier", got)
	}
}

func TestSyntaxDisabled(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"disabled", []Option{WithLanguage("rust"), WithSyntax(false)}},
		{"unknown language", []Option{WithLanguage("cobol")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(append(tt.opts, WithContent("fn main() {}"))...)
			if b.Syntax() != nil {
				t.Fatal("expected no synchronizer")
			}
			if err := b.Insert(0, "pub "); err != nil {
				t.Errorf("Insert without syntax: %v", err)
			}
		})
	}
}
