// Package clipboard implements ports.Clipboard on top of the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/doeshing/diceroll-go/internal/ports"
)

// System copies through github.com/atotto/clipboard, which shells out to
// pbcopy, xclip/xsel, wl-copy or the Windows API depending on the platform.
type System struct {
	write       func(string) error
	unsupported bool
}

// New builds the clipboard adapter.
func New() *System {
	return &System{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Enabled reports whether a clipboard utility was found at startup.
func (c *System) Enabled() bool {
	return !c.unsupported
}

// Copy copies text to the system clipboard.
func (c *System) Copy(text string) error {
	if !c.Enabled() {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("clipboard: copy: %w", err)
	}
	return nil
}

var _ ports.Clipboard = (*System)(nil)
