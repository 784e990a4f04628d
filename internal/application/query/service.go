package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Service is the host-side use case: it hands a query to the launcher plugin
// and performs entry activation.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Plugin         ports.LauncherPlugin
	Clipboard      ports.Clipboard
	Logger         ports.Logger
}

// Run processes a single launcher query.
func (s *Service) Run(req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.ConfigProvider == nil || s.Plugin == nil || s.Logger == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.QueryResponse{}, fmt.Errorf("load config: %w", err)
	}

	query := domain.StripTrigger(req.Query, req.Trigger)
	entries := s.Plugin.HandleQuery(query)
	s.Logger.Debug("query processed", map[string]interface{}{
		"query":   query,
		"entries": len(entries),
	})

	resp := domain.QueryResponse{Query: query, Entries: entries}
	if !req.Activate {
		return resp, nil
	}

	copyAction, err := cfg.ResolveCopyAction(req.CopyAction)
	if err != nil {
		return resp, err
	}
	index, err := pickEntry(entries, req.Select)
	if err != nil {
		return resp, err
	}
	if index < 0 {
		s.Logger.Info("nothing to copy", map[string]interface{}{"query": query})
		return resp, nil
	}

	text := actionText(entries[index], copyAction)
	resp.Activated = index + 1
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		s.Logger.Warn("clipboard unavailable", map[string]interface{}{"entry": resp.Activated})
		return resp, nil
	}
	if err := s.Clipboard.Copy(text); err != nil {
		s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		return resp, nil
	}
	resp.Copied = text
	return resp, nil
}

// pickEntry resolves a 1-based selection. With no selection it prefers the
// overall total, then the first entry that has an action; -1 means none.
func pickEntry(entries []domain.DisplayEntry, selection int) (int, error) {
	if selection < 0 || selection > len(entries) {
		return -1, fmt.Errorf("entry %d out of range (1-%d)", selection, len(entries))
	}
	if selection > 0 {
		if !entries[selection-1].HasAction() {
			return -1, fmt.Errorf("entry %d has nothing to copy", selection)
		}
		return selection - 1, nil
	}
	for i, entry := range entries {
		if entry.Kind == domain.EntryTotal {
			return i, nil
		}
	}
	for i, entry := range entries {
		if entry.HasAction() {
			return i, nil
		}
	}
	return -1, nil
}

func actionText(entry domain.DisplayEntry, copyAction string) string {
	if action, ok := entry.Action(domain.ActionLabel(copyAction)); ok {
		return action.Text
	}
	return entry.ClipboardText
}
