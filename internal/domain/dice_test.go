package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/diceroll-go/internal/domain"
)

func TestDiceSpecification_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.DiceSpecification
		wantErr error
	}{
		{name: "one sided die", spec: domain.DiceSpecification{Amount: 1, Sides: 1}},
		{name: "upper bounds", spec: domain.DiceSpecification{Amount: domain.MaxAmount, Sides: domain.MaxSides}},
		{name: "zero amount", spec: domain.DiceSpecification{Amount: 0, Sides: 6}, wantErr: domain.ErrInvalidRange},
		{name: "zero sides", spec: domain.DiceSpecification{Amount: 2, Sides: 0}, wantErr: domain.ErrInvalidRange},
		{name: "too many dice", spec: domain.DiceSpecification{Amount: domain.MaxAmount + 1, Sides: 6}, wantErr: domain.ErrInvalidRange},
		{name: "too many sides", spec: domain.DiceSpecification{Amount: 1, Sides: domain.MaxSides + 1}, wantErr: domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFailure_IsMatchesOnlyItsKind(t *testing.T) {
	err := error(&domain.ParseFailure{Token: "xyz", Kind: domain.MalformedToken, Reason: "bad"})
	if !errors.Is(err, domain.ErrMalformedToken) {
		t.Error("expected malformed failure to match ErrMalformedToken")
	}
	if errors.Is(err, domain.ErrInvalidRange) {
		t.Error("malformed failure must not match ErrInvalidRange")
	}
	if got := err.Error(); got != "xyz: bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDiceSpecification_Notation(t *testing.T) {
	spec := domain.DiceSpecification{Token: "2D6", Amount: 2, Sides: 6}
	if got := spec.Notation(); got != "2d6" {
		t.Errorf("Notation() = %q, want 2d6", got)
	}
}
