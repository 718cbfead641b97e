// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docx

import (
	"strings"

	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
)

// RGB is a hex color in RRGGBB form, e.g. "0000FF".
type RGB string

// ColorBlue is the conventional link color.
const ColorBlue RGB = "0000FF"

// UnderlineStyle is a value of the w:u element.
type UnderlineStyle = stypes.Underline

const UnderlineSingle = stypes.UnderlineSingle

// Inline is a node that lives directly inside a paragraph: a [*Run] or a
// [*Hyperlink].
type Inline interface {
	Text() string
}

// Run is a contiguous span of text sharing one set of properties.
type Run struct {
	ct *ctypes.Run
}

// Color sets the run color and returns the run.
func (r *Run) Color(c RGB) *Run {
	props(r.ct).Color = ctypes.NewColor(string(c))
	return r
}

// Underline sets the underline style and returns the run.
func (r *Run) Underline(u UnderlineStyle) *Run {
	props(r.ct).Underline = ctypes.NewGenSingleStrVal(u)
	return r
}

func (r *Run) Text() string { return runText(r.ct) }

func props(ct *ctypes.Run) *ctypes.RunProperty {
	if ct.Property == nil {
		ct.Property = &ctypes.RunProperty{}
	}
	return ct.Property
}

func runText(ct *ctypes.Run) string {
	if ct == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range ct.Children {
		if child.Text != nil {
			b.WriteString(child.Text.Text)
		}
	}
	return b.String()
}
