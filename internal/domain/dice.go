// Package domain defines the core entities and value objects for diceroll.
//
// This file contains the dice model: a parsed specification, the result of rolling
// it, and the bounds that keep a single query from allocating without limit.
package domain

import "fmt"

// Bounds for a single dice specification.
const (
	// MinAmount is the smallest number of dice a token may request
	MinAmount = 1
	// MaxAmount caps the number of dice rolled for one token
	MaxAmount = 10_000
	// MinSides is the smallest die allowed (a one-sided die always rolls 1)
	MinSides = 1
	// MaxSides caps the number of faces on a die
	MaxSides = 1_000_000
)

// DiceSpecification is a parsed `<amount>d<sides>` directive.
type DiceSpecification struct {
	Token  string
	Amount int
	Sides  int
}

// Notation renders the specification in canonical lower-case form, e.g. "2d6".
func (s DiceSpecification) Notation() string {
	return fmt.Sprintf("%dd%d", s.Amount, s.Sides)
}

// Validate checks the amount and sides against the permitted bounds.
func (s DiceSpecification) Validate() error {
	if s.Amount < MinAmount || s.Amount > MaxAmount {
		return AmountOutOfRange(s.Token)
	}
	if s.Sides < MinSides || s.Sides > MaxSides {
		return SidesOutOfRange(s.Token)
	}
	return nil
}

// AmountOutOfRange is the InvalidRange failure for a bad dice count.
func AmountOutOfRange(token string) *ParseFailure {
	return rangeFailure(token, "Amount", MinAmount, MaxAmount)
}

// SidesOutOfRange is the InvalidRange failure for a bad number of faces.
func SidesOutOfRange(token string) *ParseFailure {
	return rangeFailure(token, "Sides", MinSides, MaxSides)
}

func rangeFailure(token, field string, min, max int) *ParseFailure {
	return &ParseFailure{
		Token:  token,
		Kind:   InvalidRange,
		Reason: fmt.Sprintf("%s must be between %d and %d", field, min, max),
	}
}

// RollResult holds the values produced by rolling one specification.
// Rolls has exactly Spec.Amount values, each in [1, Spec.Sides].
type RollResult struct {
	Spec  DiceSpecification
	Rolls []int
	Total int
}
