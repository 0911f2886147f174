//go:build !windows

package dialog

import "fmt"

func newMessageBox(opts Options) (Prompter, error) {
	return nil, fmt.Errorf("dialog %q needs Windows, use %q", KindMessageBox, KindConsole)
}
