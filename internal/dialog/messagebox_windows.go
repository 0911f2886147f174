//go:build windows

package dialog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// MessageBox shows a Win32 OK/Cancel message box.
type MessageBox struct {
	caption *uint16
	topmost bool
}

func newMessageBox(opts Options) (Prompter, error) {
	caption := opts.Caption
	if caption == "" {
		caption = "center-window"
	}
	p, err := windows.UTF16PtrFromString(sanitize(caption))
	if err != nil {
		return nil, fmt.Errorf("encode caption: %w", err)
	}

	return &MessageBox{caption: p, topmost: opts.Topmost}, nil
}

// sanitize strips NULs, which UTF-16 conversion rejects, and uses CRLF line
// breaks.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}

func (m *MessageBox) Confirm(ctx context.Context, stage Stage, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	text, err := windows.UTF16PtrFromString(sanitize(message))
	if err != nil {
		return false, fmt.Errorf("encode message: %w", err)
	}

	ret, err := windows.MessageBox(0, text, m.caption, messageBoxStyle(stage, m.topmost))
	if ret == 0 {
		return false, fmt.Errorf("MessageBox: %w", err)
	}
	return ret != idCancel, nil
}
