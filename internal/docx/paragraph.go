// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docx

import (
	"strings"

	gdocx "github.com/gomutex/godocx/docx"
)

// Paragraph is a block of runs and hyperlinks.
type Paragraph struct {
	p *gdocx.Paragraph
}

// AddRun appends a new run carrying text and returns it for styling.
func (p *Paragraph) AddRun(text string) *Run {
	p.p.AddText(text)
	children := p.p.GetCT().Children
	return &Run{ct: children[len(children)-1].Run}
}

// AddLink appends a clickable hyperlink showing text and pointing at target.
// The target must be an absolute http or https URL with a host, or a mailto
// URL; otherwise nothing is appended and ErrInvalidLinkTarget is returned.
func (p *Paragraph) AddLink(target, text string) (*Hyperlink, error) {
	if err := validateLinkTarget(target); err != nil {
		return nil, err
	}

	p.p.AddLink(text, strings.TrimSpace(target))
	children := p.p.GetCT().Children
	return &Hyperlink{ct: children[len(children)-1].Link}, nil
}

// Style returns the paragraph style id, or "" for the default style.
func (p *Paragraph) Style() string {
	prop := p.p.GetCT().Property
	if prop == nil || prop.Style == nil {
		return ""
	}
	return prop.Style.Val
}

// Content returns the runs and hyperlinks in document order.
func (p *Paragraph) Content() []Inline {
	var out []Inline
	for _, child := range p.p.GetCT().Children {
		switch {
		case child.Link != nil:
			out = append(out, &Hyperlink{ct: child.Link})
		case child.Run != nil:
			out = append(out, &Run{ct: child.Run})
		}
	}
	return out
}

// Text concatenates the text of every run, including hyperlink runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, node := range p.Content() {
		b.WriteString(node.Text())
	}
	return b.String()
}
