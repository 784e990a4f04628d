package dice

import (
	"math/rand/v2"
	"strconv"
)

// sequenceSource replays values in order and records each requested range.
type sequenceSource struct {
	values []int
	next   int
	calls  [][2]int
}

func (s *sequenceSource) IntRange(min, max int) int {
	s.calls = append(s.calls, [2]int{min, max})
	if len(s.values) == 0 {
		return min
	}
	value := s.values[s.next%len(s.values)]
	s.next++
	return value
}

// maxSource always rolls the highest face.
type maxSource struct{}

func (maxSource) IntRange(_, max int) int { return max }

// seededSource is a real PRNG with a fixed seed for range properties.
type seededSource struct {
	rng *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) IntRange(min, max int) int {
	return min + s.rng.IntN(max-min+1)
}

type stubIcons map[int]bool

func (s stubIcons) Name(sides int) string {
	if s[sides] {
		return "d" + strconv.Itoa(sides)
	}
	return "d20"
}

func (stubIcons) Path(name string) (string, error) { return "/icons/" + name + ".svg", nil }
