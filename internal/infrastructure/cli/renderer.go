package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Renderer prints query responses as numbered text entries or a JSON array.
type Renderer struct {
	out   io.Writer
	icons ports.IconResolver

	titleStyle   *color.Color
	totalStyle   *color.Color
	failureStyle *color.Color
	detailStyle  *color.Color
	copiedStyle  *color.Color
}

// NewRenderer builds a renderer; colored controls ANSI styling of text output.
// icons may be nil, in which case JSON output carries no icon paths.
func NewRenderer(out io.Writer, colored bool, icons ports.IconResolver) *Renderer {
	r := &Renderer{
		out:          out,
		icons:        icons,
		titleStyle:   color.New(color.Bold),
		totalStyle:   color.New(color.FgCyan, color.Bold),
		failureStyle: color.New(color.FgRed),
		detailStyle:  color.New(color.Faint),
		copiedStyle:  color.New(color.FgGreen),
	}
	for _, style := range []*color.Color{r.titleStyle, r.totalStyle, r.failureStyle, r.detailStyle, r.copiedStyle} {
		if colored {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return r
}

// Render writes resp in the given format (domain.FormatText or domain.FormatJSON).
func (r *Renderer) Render(resp domain.QueryResponse, format string) error {
	if format == domain.FormatJSON {
		return r.renderJSON(resp)
	}
	r.renderText(resp)
	return nil
}

func (r *Renderer) renderText(resp domain.QueryResponse) {
	for i, entry := range resp.Entries {
		style := r.titleStyle
		switch entry.Kind {
		case domain.EntryTotal:
			style = r.totalStyle
		case domain.EntryFailure:
			style = r.failureStyle
		}
		marker := " "
		if resp.Activated == i+1 {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s%2d. %s\n", marker, i+1, style.Sprint(entry.Title))
		if entry.Subtitle != "" {
			fmt.Fprintf(r.out, "    %s\n", r.detailStyle.Sprint(entry.Subtitle))
		}
	}
	if resp.Copied != "" {
		fmt.Fprintf(r.out, "\n%s %s\n", r.copiedStyle.Sprint("Copied to clipboard:"), resp.Copied)
	}
}

type entryJSON struct {
	Title         string               `json:"title"`
	Subtitle      string               `json:"subtitle"`
	ClipboardText string               `json:"clipboard_text"`
	Kind          domain.EntryKind     `json:"kind"`
	Icon          string               `json:"icon,omitempty"`
	IconPath      string               `json:"icon_path,omitempty"`
	Actions       []domain.EntryAction `json:"actions"`
	Rolls         []int                `json:"rolls,omitempty"`
	Total         int                  `json:"total,omitempty"`
	Error         string               `json:"error,omitempty"`
}

func (r *Renderer) renderJSON(resp domain.QueryResponse) error {
	entries := make([]entryJSON, 0, len(resp.Entries))
	for _, entry := range resp.Entries {
		item := entryJSON{
			Title:         entry.Title,
			Subtitle:      entry.Subtitle,
			ClipboardText: entry.ClipboardText,
			Kind:          entry.Kind,
			Icon:          entry.Icon,
			Actions:       entry.Actions,
			Rolls:         entry.Rolls,
			Total:         entry.Total,
		}
		if item.Actions == nil {
			item.Actions = []domain.EntryAction{}
		}
		if entry.Failure != nil {
			item.Error = entry.Failure.Error()
		}
		if r.icons != nil && entry.Icon != "" {
			// a missing path only loses the icon; the entry is still usable
			if p, err := r.icons.Path(entry.Icon); err == nil {
				item.IconPath = p
			}
		}
		entries = append(entries, item)
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return nil
}
