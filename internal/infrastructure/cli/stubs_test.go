package cli

import (
	"github.com/doeshing/diceroll-go/internal/application/dice"
)

// maxSource always rolls the highest face.
type maxSource struct{}

func (maxSource) IntRange(_, max int) int { return max }

type recordingClipboard struct {
	copied   []string
	err      error
	disabled bool
}

func (c *recordingClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

func (c *recordingClipboard) Enabled() bool { return !c.disabled }

func (c *recordingClipboard) last() string {
	if len(c.copied) == 0 {
		return ""
	}
	return c.copied[len(c.copied)-1]
}

type stubIcons struct{}

func (stubIcons) Name(int) string { return "d20" }

func (stubIcons) Path(name string) (string, error) { return "/icons/" + name + ".svg", nil }

func newMaxPlugin() *dice.Plugin {
	return dice.NewPlugin(dice.NewProcessor(maxSource{}, nil), "roll ")
}
