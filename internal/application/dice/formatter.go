package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/diceroll-go/internal/domain"
)

const (
	usageTitle    = "Dice Roll"
	usageSubtitle = "Roll any number of dice using <amount>d<sides>, e.g. 2d6 3d8 1d20"
)

func rollEntry(result domain.RollResult, icon string) domain.DisplayEntry {
	title := fmt.Sprintf("Rolled %s - Total: %d", result.Spec.Notation(), result.Total)
	entry := withActions(title, result.Rolls, result.Total)
	entry.Kind = domain.EntryRoll
	entry.Icon = icon
	entry.Token = result.Spec.Token
	return entry
}

func overallEntry(results []domain.RollResult) domain.DisplayEntry {
	var rolls []int
	total := 0
	for _, result := range results {
		rolls = append(rolls, result.Rolls...)
		total += result.Total
	}
	entry := withActions(fmt.Sprintf("Overall Total: %d", total), rolls, total)
	entry.Kind = domain.EntryTotal
	entry.Icon = domain.IconOverall
	return entry
}

func withActions(title string, rolls []int, total int) domain.DisplayEntry {
	joined := joinRolls(rolls)
	totalText := strconv.Itoa(total)
	return domain.DisplayEntry{
		Title:         title,
		Subtitle:      "Rolls: " + joined,
		ClipboardText: totalText,
		Actions: []domain.EntryAction{
			{Label: domain.ActionCopyTotal, Text: totalText},
			{Label: domain.ActionCopyRolls, Text: joined},
		},
		Rolls: rolls,
		Total: total,
	}
}

func failureEntry(failure *domain.ParseFailure) domain.DisplayEntry {
	return domain.DisplayEntry{
		Title:    fmt.Sprintf("Invalid dice %q", failure.Token),
		Subtitle: failure.Reason,
		Kind:     domain.EntryFailure,
		Icon:     domain.IconFallback,
		Token:    failure.Token,
		Failure:  failure,
	}
}

func usageEntry() domain.DisplayEntry {
	return domain.DisplayEntry{
		Title:    usageTitle,
		Subtitle: usageSubtitle,
		Kind:     domain.EntryUsage,
		Icon:     domain.IconOverall,
		Failure: &domain.ParseFailure{
			Kind:   domain.EmptyQuery,
			Reason: usageSubtitle,
		},
	}
}

func joinRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return strings.Join(parts, ", ")
}
