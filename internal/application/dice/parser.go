// Package dice turns a launcher query such as "2d6 3d8" into rolled display entries.
package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/doeshing/diceroll-go/internal/domain"
)

var tokenPattern = regexp.MustCompile(`^([0-9]+)[dD]([0-9]+)$`)

const malformedReason = "Expected <amount>d<sides>, e.g. 2d6"

// Tokenize splits a query on whitespace. Token order is preserved.
func Tokenize(query string) []string {
	return strings.Fields(query)
}

// ParseToken parses one `<amount>d<sides>` token.
//
// A token that does not match the pattern fails with a domain.MalformedToken
// failure. A well-formed token whose numbers are zero, overflow, or exceed
// domain.MaxAmount / domain.MaxSides fails with domain.InvalidRange. Parsing is
// deterministic: the same token always yields the same specification.
func ParseToken(token string) (domain.DiceSpecification, error) {
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil {
		return domain.DiceSpecification{}, &domain.ParseFailure{
			Token:  token,
			Kind:   domain.MalformedToken,
			Reason: malformedReason,
		}
	}

	amount, ok := parseBounded(match[1], domain.MaxAmount)
	if !ok {
		return domain.DiceSpecification{}, domain.AmountOutOfRange(token)
	}
	sides, ok := parseBounded(match[2], domain.MaxSides)
	if !ok {
		return domain.DiceSpecification{}, domain.SidesOutOfRange(token)
	}

	spec := domain.DiceSpecification{Token: token, Amount: amount, Sides: sides}
	if err := spec.Validate(); err != nil {
		return domain.DiceSpecification{}, err
	}
	return spec, nil
}

// parseBounded converts a digit string, treating overflow like any other value
// above limit.
func parseBounded(digits string, limit int) (int, bool) {
	value, err := strconv.Atoi(digits)
	if err != nil || value > limit {
		return 0, false
	}
	return value, true
}
