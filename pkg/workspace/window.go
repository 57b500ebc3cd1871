package workspace

import (
	"github.com/scrawl/scrawl-cli/pkg/models"
)

// DirtyMark prefixes the title of a window with unsaved changes.
const DirtyMark = "● "

// Window is one editor window: a document plus its place and size on the
// canvas. Geometry is in terminal cells, origin top-left.
type Window struct {
	id  int
	doc *models.Document

	x, y          int
	width, height int
}

func newWindow(id int, doc *models.Document) *Window {
	return &Window{id: id, doc: doc}
}

// ID returns the window's identity. Ids are unique for the life of the
// process and never reused.
func (w *Window) ID() int {
	return w.id
}

// Doc returns the document shown in this window.
func (w *Window) Doc() *models.Document {
	return w.doc
}

// Title returns the window chrome title: the document's display name,
// prefixed with the dirty marker when there are unsaved changes.
func (w *Window) Title() string {
	if w.doc.Dirty() {
		return DirtyMark + w.doc.FileName()
	}
	return w.doc.FileName()
}

// Pos returns the window origin on the canvas.
func (w *Window) Pos() (x, y int) {
	return w.x, w.y
}

// Size returns the window's outer dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetPos moves the window origin.
func (w *Window) SetPos(x, y int) {
	w.x, w.y = x, y
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
}
