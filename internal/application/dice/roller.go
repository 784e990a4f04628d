package dice

import (
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Roll rolls every die in spec using rng. The caller must pass a validated spec.
func Roll(spec domain.DiceSpecification, rng ports.RandomSource) domain.RollResult {
	rolls := make([]int, spec.Amount)
	total := 0
	for i := range rolls {
		value := rng.IntRange(1, spec.Sides)
		rolls[i] = value
		total += value
	}
	return domain.RollResult{
		Spec:  spec,
		Rolls: rolls,
		Total: total,
	}
}
