// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docx

import (
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	gdocx "github.com/gomutex/godocx/docx"
	"github.com/spf13/afero"
)

// MaxHeadingLevel is the deepest heading style in the default template.
const MaxHeadingLevel = 9

// Document is an in-memory word-processing document built from the godocx
// default template.
type Document struct {
	root *gdocx.RootDoc
}

// New returns an empty document.
func New() (*Document, error) {
	root, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	return &Document{root: root}, nil
}

// AddParagraph appends an empty, unstyled paragraph.
func (d *Document) AddParagraph() *Paragraph {
	return &Paragraph{p: d.root.AddEmptyParagraph()}
}

// AddHeading appends a heading paragraph holding text. Level 0 uses the
// Title style and levels 1..9 use Heading1..Heading9; other levels are
// clamped into that range.
func (d *Document) AddHeading(text string, level int) (*Paragraph, error) {
	level = max(0, min(level, MaxHeadingLevel))

	p, err := d.root.AddHeading(text, uint(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeading, err)
	}
	return &Paragraph{p: p}, nil
}

// Paragraphs returns the body paragraphs in order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, child := range d.root.Document.Body.Children {
		if child.Para != nil {
			out = append(out, &Paragraph{p: child.Para})
		}
	}
	return out
}

// Save writes the document to path on fs, replacing any existing file.
func (d *Document) Save(fs afero.Fs, path string) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err = d.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// WriteTo writes the document as a .docx package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := d.root.Write(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
