package dice

import (
	"fmt"
	"math/rand"
)

// SeededRoller is a deterministic Roller over math/rand.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller seeded with seed.
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a face in [1, size].
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	return s.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
