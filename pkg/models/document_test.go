package models

import (
	"testing"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected DocKind
	}{
		{"markdown md", "notes.md", KindMarkdown},
		{"markdown long", "REAMDE.markdown", KindMarkdown},
		{"markdown mdown", "a/b/post.mdown", KindMarkdown},
		{"markdown uppercase", "SPEC.MD", KindMarkdown},
		{"html", "index.html", KindHTML},
		{"htm", "legacy.htm", KindHTML},
		{"xhtml", "strict.xhtml", KindHTML},
		{"plain txt", "todo.txt", KindPlain},
		{"plain no extension", "Makefile", KindPlain},
		{"plain unknown extension", "data.csv", KindPlain},
		{"empty path", "", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindForPath(tt.path); got != tt.expected {
				t.Errorf("KindForPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DocKind
	}{
		{"plain", "plain", KindPlain},
		{"markdown", "markdown", KindMarkdown},
		{"md shorthand", "md", KindMarkdown},
		{"html", "html", KindHTML},
		{"mixed case", "Markdown", KindMarkdown},
		{"padded", "  html  ", KindHTML},
		{"unknown falls back", "rtf", KindPlain},
		{"empty falls back", "", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKind(tt.input); got != tt.expected {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDocumentLifecycle(t *testing.T) {
	doc := NewDocument()

	if doc.Dirty() {
		t.Error("new document should start clean")
	}
	if doc.Path() != "" {
		t.Errorf("new document should be unbound, got path %q", doc.Path())
	}
	if doc.FileName() != UntitledName {
		t.Errorf("unbound document FileName = %q, want %q", doc.FileName(), UntitledName)
	}
	if doc.Kind() != KindPlain {
		t.Errorf("unbound document Kind = %v, want KindPlain", doc.Kind())
	}

	doc.SetText("hello")
	if !doc.Dirty() {
		t.Error("SetText should mark the document dirty")
	}
	if doc.Text() != "hello" {
		t.Errorf("Text = %q, want %q", doc.Text(), "hello")
	}

	doc.BindPath("/tmp/notes.md")
	if doc.Dirty() {
		t.Error("BindPath should clear the dirty flag")
	}
	if doc.FileName() != "notes.md" {
		t.Errorf("FileName = %q, want %q", doc.FileName(), "notes.md")
	}
	if doc.Kind() != KindMarkdown {
		t.Errorf("Kind = %v, want KindMarkdown", doc.Kind())
	}

	// Editing after a save dirties the document again without unbinding it.
	doc.SetText("hello world")
	if !doc.Dirty() {
		t.Error("edit after save should mark the document dirty")
	}
	if doc.Path() != "/tmp/notes.md" {
		t.Errorf("edit should not change the bound path, got %q", doc.Path())
	}
}

func TestDocumentSetTextAlwaysDirties(t *testing.T) {
	doc := NewDocument()
	doc.SetText("same")
	doc.BindPath("/tmp/same.txt")

	// Re-setting identical text still counts as a modification.
	doc.SetText("same")
	if !doc.Dirty() {
		t.Error("SetText with unchanged text should still mark the document dirty")
	}
}
