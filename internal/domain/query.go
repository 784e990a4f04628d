package domain

import "context"

// QueryRequest captures a query arriving from the CLI or the interactive launcher.
type QueryRequest struct {
	Context context.Context
	Query   string
	// Trigger is stripped from the front of Query when present.
	Trigger string
	// Activate copies the selected entry's action text to the clipboard.
	Activate bool
	// Select is the 1-based entry to activate; 0 picks the default entry.
	Select int
	// CopyAction is "total" or "rolls"; empty uses the configured action.
	CopyAction string
}

// QueryResponse is the result propagated back to the host adapter.
type QueryResponse struct {
	Query   string
	Entries []DisplayEntry
	// Activated is the 1-based index of the activated entry, 0 when none.
	Activated int
	Copied    string
}

// QueryService exposes the use-case boundary for handling a query.
type QueryService interface {
	Run(QueryRequest) (QueryResponse, error)
}
