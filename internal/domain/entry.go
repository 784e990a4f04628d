package domain

// EntryKind tells a host what produced a display entry.
type EntryKind string

const (
	EntryRoll    EntryKind = "roll"
	EntryTotal   EntryKind = "total"
	EntryFailure EntryKind = "failure"
	EntryUsage   EntryKind = "usage"
)

// EntryAction is a clipboard action the host offers when an entry is activated.
type EntryAction struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// DisplayEntry is a single result item presented by the launcher.
//
// ClipboardText is the text of the primary (first) action and is empty when the
// entry offers no action. Rolls and Total are only populated for roll and total
// entries. Failure is set for failure entries and, with kind EmptyQuery, for the
// usage entry.
type DisplayEntry struct {
	Title         string
	Subtitle      string
	ClipboardText string
	Kind          EntryKind
	Icon          string
	Token         string
	Actions       []EntryAction
	Rolls         []int
	Total         int
	Failure       *ParseFailure
}

// HasAction reports whether activating the entry copies anything.
func (e DisplayEntry) HasAction() bool {
	return len(e.Actions) > 0
}

// Action returns the action with the given label, or false.
func (e DisplayEntry) Action(label string) (EntryAction, bool) {
	for _, action := range e.Actions {
		if action.Label == label {
			return action, true
		}
	}
	return EntryAction{}, false
}
