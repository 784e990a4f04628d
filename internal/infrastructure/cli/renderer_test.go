package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/diceroll-go/internal/domain"
)

func TestRendererTextOutput(t *testing.T) {
	entries := newMaxPlugin().HandleQuery("2d6 1d4")
	var buf bytes.Buffer

	err := NewRenderer(&buf, false, nil).Render(domain.QueryResponse{
		Entries:   entries,
		Activated: 3,
		Copied:    "16",
	}, domain.FormatText)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"  1. Rolled 2d6 - Total: 12",
		"    Rolls: 6, 6",
		"  2. Rolled 1d4 - Total: 4",
		"    Rolls: 4",
		"* 3. Overall Total: 16",
		"    Rolls: 6, 6, 4",
		"",
		"Copied to clipboard: 16",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererTextOmitsEmptySubtitle(t *testing.T) {
	var buf bytes.Buffer
	resp := domain.QueryResponse{Entries: []domain.DisplayEntry{{Title: "only"}}}
	if err := NewRenderer(&buf, false, nil).Render(resp, domain.FormatText); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "  1. only\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRendererJSONOutput(t *testing.T) {
	entries := newMaxPlugin().HandleQuery("1d4 xyz")
	var buf bytes.Buffer

	if err := NewRenderer(&buf, false, stubIcons{}).Render(domain.QueryResponse{Entries: entries}, domain.FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got []entryJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := []entryJSON{
		{
			Title:         "Rolled 1d4 - Total: 4",
			Subtitle:      "Rolls: 4",
			ClipboardText: "4",
			Kind:          domain.EntryRoll,
			Icon:          "d20",
			IconPath:      "/icons/d20.svg",
			Actions: []domain.EntryAction{
				{Label: domain.ActionCopyTotal, Text: "4"},
				{Label: domain.ActionCopyRolls, Text: "4"},
			},
			Rolls: []int{4},
			Total: 4,
		},
		{
			Title:    `Invalid dice "xyz"`,
			Subtitle: "Expected <amount>d<sides>, e.g. 2d6",
			Kind:     domain.EntryFailure,
			Icon:     "d20",
			IconPath: "/icons/d20.svg",
			Actions:  []domain.EntryAction{},
			Error:    "xyz: Expected <amount>d<sides>, e.g. 2d6",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json output mismatch (-want +got):\n%s", diff)
	}
}
