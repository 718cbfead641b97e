// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders the final summaries printed by the commands.
package report

import (
	"strings"

	"github.com/MKhiriev/go-media-publisher/internal/app"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "────────────────────────"

// Upload renders the outcome of a publish run. err is the first failure, if
// any; the result payload is shown either way.
func Upload(result models.UploadResult, err error) string {
	var rows [][2]string
	if result.Success {
		rows = append(rows,
			[2]string{"Media ID", result.MediaID},
			[2]string{"Image URL", result.URLOrNA()},
		)
	} else if err != nil {
		rows = append(rows,
			[2]string{"Reason", app.Describe(err)},
			[2]string{"Error", err.Error()},
		)
	}
	if len(result.Payload) > 0 {
		rows = append(rows, [2]string{"Payload", string(result.Payload)})
	}

	if result.Success {
		return renderPage(successStyle.Render("UPLOAD SUCCEEDED"), rows)
	}
	return renderPage(failureStyle.Render("UPLOAD FAILED"), rows)
}

// Document renders the outcome of building the link document at path.
func Document(path string, err error) string {
	if err != nil {
		return renderPage(failureStyle.Render("DOCUMENT NOT SAVED"), [][2]string{
			{"Path", path},
			{"Reason", app.Describe(err)},
			{"Error", err.Error()},
		})
	}
	return renderPage(successStyle.Render("DOCUMENT SAVED"), [][2]string{{"Path", path}})
}

// BuildInfo renders the build metadata block shown at startup.
func BuildInfo(name string, info models.AppBuildInfo) string {
	return boxStyle.Render(titleStyle.Render(name) + "\n" + strings.TrimRight(info.String(), "\n"))
}

func renderPage(title string, rows [][2]string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(row[0] + ":" + strings.Repeat(" ", width-lipgloss.Width(row[0]))))
		b.WriteString(" ")
		b.WriteString(valueOrNA(row[1]))
	}

	return boxStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
