package dice

import (
	"errors"

	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Processor turns a query into display entries.
//
// Processing runs tokenize, parse, validate, roll and format in sequence. The
// only state is the injected random source, so a Processor is safe for
// concurrent use whenever its RandomSource is.
type Processor struct {
	Random ports.RandomSource
	// Icons is optional; without it every die uses domain.IconFallback.
	Icons ports.IconResolver
}

// NewProcessor builds a processor rolling with rng.
func NewProcessor(rng ports.RandomSource, icons ports.IconResolver) *Processor {
	return &Processor{Random: rng, Icons: icons}
}

// Process returns one entry per token in query order, followed by an overall
// total when more than one token was given and all of them rolled. Invalid
// tokens become failure entries in place; an empty query yields a single usage
// entry. Process never fails.
func (p *Processor) Process(query string) []domain.DisplayEntry {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []domain.DisplayEntry{usageEntry()}
	}

	entries := make([]domain.DisplayEntry, 0, len(tokens)+1)
	results := make([]domain.RollResult, 0, len(tokens))
	failed := false

	for _, token := range tokens {
		spec, err := ParseToken(token)
		if err != nil {
			failed = true
			entries = append(entries, failureEntry(asFailure(token, err)))
			continue
		}
		result := Roll(spec, p.Random)
		results = append(results, result)
		entries = append(entries, rollEntry(result, p.iconFor(spec.Sides)))
	}

	if len(tokens) > 1 && !failed {
		entries = append(entries, overallEntry(results))
	}
	return entries
}

func (p *Processor) iconFor(sides int) string {
	if p.Icons == nil {
		return domain.IconFallback
	}
	return p.Icons.Name(sides)
}

func asFailure(token string, err error) *domain.ParseFailure {
	var failure *domain.ParseFailure
	if errors.As(err, &failure) {
		return failure
	}
	return &domain.ParseFailure{Token: token, Kind: domain.MalformedToken, Reason: err.Error()}
}
