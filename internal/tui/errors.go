// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user quits with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// errorNotice turns err into an error notice command.
func errorNotice(err error) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{notice: service.Describe(err), isError: true}
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
