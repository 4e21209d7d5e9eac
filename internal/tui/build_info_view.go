// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(app.ProductName)
	b.WriteString("\nVersion:     ")
	b.WriteString(info.Version)
	b.WriteString("\nDate:        ")
	b.WriteString(info.Date)
	b.WriteString("\nCommit:      ")
	b.WriteString(info.Commit)

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}
