// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-publisher/internal/docx"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/spf13/afero"
)

const (
	firstLinkLabel  = "First test link: "
	secondLinkLabel = "Second test link: "
	fallbackSuffix  = " (fallback style)"
)

// DocumentOptions configures the generated document. Zero fields take the
// models defaults.
type DocumentOptions struct {
	Title   string
	LinkURL string
}

// HyperlinkResult is the outcome of building a clickable hyperlink: either
// Node is set and Err is nil, or Err explains why no node was built.
type HyperlinkResult struct {
	Node *docx.Hyperlink
	Err  error
}

type documentService struct {
	fs     afero.Fs
	opts   DocumentOptions
	logger *logger.Logger
}

func NewDocumentService(fs afero.Fs, opts DocumentOptions, log *logger.Logger) DocumentService {
	if opts.Title == "" {
		opts.Title = models.DefaultDocumentTitle
	}
	if opts.LinkURL == "" {
		opts.LinkURL = models.DefaultLinkURL
	}
	return &documentService{fs: fs, opts: opts, logger: log.WithComponent("document")}
}

func (d *documentService) BuildLinkDocument(ctx context.Context, outPath string) error {
	if outPath == "" {
		outPath = models.DefaultDocumentPath
	}

	doc, err := d.compose()
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to build document")
		return fmt.Errorf("%w: %w", ErrDocumentSave, err)
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentSave, err)
	}
	if err = doc.Save(d.fs, outPath); err != nil {
		d.logger.Error().Err(err).Str("path", outPath).Msg("failed to save document")
		return fmt.Errorf("%w: %w", ErrDocumentSave, err)
	}

	d.logger.Info().Str("path", outPath).Int("paragraphs", len(doc.Paragraphs())).Msg("document saved")
	return nil
}

// compose builds the title, a styled but non-clickable link paragraph and a
// paragraph holding a clickable hyperlink or its styled fallback.
func (d *documentService) compose() (*docx.Document, error) {
	url := d.opts.LinkURL

	doc, err := docx.New()
	if err != nil {
		return nil, err
	}
	if _, err = doc.AddHeading(d.opts.Title, 0); err != nil {
		return nil, err
	}

	styled := doc.AddParagraph()
	styled.AddRun(firstLinkLabel)
	linkRun(styled.AddRun(url))

	clickable := doc.AddParagraph()
	clickable.AddRun(secondLinkLabel)

	res := buildHyperlink(clickable, url, url)
	if res.Err != nil {
		d.logger.Warn().Err(res.Err).Str("url", url).Msg("failed to create hyperlink, using styled text")
		linkRun(clickable.AddRun(url + fallbackSuffix))
		return doc, nil
	}

	d.logger.Debug().Str("url", url).Str("r_id", res.Node.RelationshipID()).Msg("hyperlink created")
	return doc, nil
}

// buildHyperlink appends a clickable, link-styled hyperlink to p. On failure
// p is left unchanged.
func buildHyperlink(p *docx.Paragraph, url, text string) HyperlinkResult {
	link, err := p.AddLink(url, text)
	if err != nil {
		return HyperlinkResult{Err: fmt.Errorf("link %q: %w", url, err)}
	}
	link.Color(docx.ColorBlue).Underline(docx.UnderlineSingle)

	return HyperlinkResult{Node: link}
}

// linkRun styles r as a link: blue with a single underline.
func linkRun(r *docx.Run) *docx.Run {
	return r.Color(docx.ColorBlue).Underline(docx.UnderlineSingle)
}
