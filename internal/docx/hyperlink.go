// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docx

import "github.com/gomutex/godocx/wml/ctypes"

// Hyperlink is a clickable run pointing at an external relationship of the
// document.
type Hyperlink struct {
	ct *ctypes.Hyperlink
}

// Color sets the link color and returns the link.
func (h *Hyperlink) Color(c RGB) *Hyperlink {
	props(h.ct.Run).Color = ctypes.NewColor(string(c))
	return h
}

// Underline sets the link underline style and returns the link.
func (h *Hyperlink) Underline(u UnderlineStyle) *Hyperlink {
	props(h.ct.Run).Underline = ctypes.NewGenSingleStrVal(u)
	return h
}

// RelationshipID is the id of the relationship holding the link target.
func (h *Hyperlink) RelationshipID() string { return h.ct.ID }

func (h *Hyperlink) Text() string { return runText(h.ct.Run) }
