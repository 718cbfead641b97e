// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docx is a typed layer over github.com/gomutex/godocx for the few
// document operations the link builder needs.
//
// Hyperlink targets are checked before godocx registers them, so a bad URL
// surfaces as [ErrInvalidLinkTarget] instead of a broken relationship:
//
//	doc, err := docx.New()
//	p := doc.AddParagraph()
//	link, err := p.AddLink("https://example.com", "example")
//	if err != nil {
//		// fall back to a styled run
//	}
//	link.Color(docx.ColorBlue).Underline(docx.UnderlineSingle)
//	err = doc.Save(afero.NewOsFs(), "out.docx")
package docx
