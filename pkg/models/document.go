package models

import (
	"path/filepath"
	"strings"
)

// UntitledName is the display name for documents that have never been saved.
const UntitledName = "Untitled"

// DocKind identifies how a document's content is interpreted for preview
// and rendering purposes.
type DocKind int

const (
	KindPlain DocKind = iota
	KindMarkdown
	KindHTML
)

// String returns the settings-file spelling of the kind.
func (k DocKind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "plain"
	}
}

// KindForPath infers the document kind from the path's extension.
func KindForPath(path string) DocKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return KindMarkdown
	case ".html", ".htm", ".xhtml":
		return KindHTML
	default:
		return KindPlain
	}
}

// ParseKind maps a settings string to a DocKind, defaulting to KindPlain
// for anything unrecognized.
func ParseKind(name string) DocKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return KindMarkdown
	case "html":
		return KindHTML
	default:
		return KindPlain
	}
}

// Document is the in-memory state of one edited file: its full text, the
// path it is bound to (empty until the first successful save), and whether
// the text has diverged from what is on disk.
type Document struct {
	text  string
	path  string
	dirty bool
}

// NewDocument returns an empty, unbound, clean document.
func NewDocument() *Document {
	return &Document{}
}

// Text returns the document's current content.
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the content and marks the document dirty. No equality
// check is made against the previous text.
func (d *Document) SetText(text string) {
	d.text = text
	d.dirty = true
}

// Path returns the bound file path, or "" for a never-saved document.
func (d *Document) Path() string {
	return d.path
}

// BindPath records a successful save or load: the document binds to path
// and the dirty flag clears.
func (d *Document) BindPath(path string) {
	d.path = path
	d.dirty = false
}

// Dirty reports whether the content has unsaved changes.
func (d *Document) Dirty() bool {
	return d.dirty
}

// FileName returns the base name of the bound path, or UntitledName for a
// never-saved document.
func (d *Document) FileName() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// Kind returns the content kind inferred from the bound path. Unbound
// documents report KindPlain.
func (d *Document) Kind() DocKind {
	if d.path == "" {
		return KindPlain
	}
	return KindForPath(d.path)
}
