package fractals

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Seed hold the primary seed used for random numbers
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to keep printed seeds a little smaller)
const epoch2020 = 1577836800

// InitSeed initializes the seed
// `hexSeed` is either the empty string or a hex value
func InitSeed(hexSeed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed from its hex form
func (s *Seed) SetSeed(hexSeed string) error {
	v, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	s.intSeed = v
	return nil
}

// String is the hex form accepted by SetSeed.
func (s Seed) String() string {
	return strconv.FormatInt(s.intSeed, 16)
}

// Rand returns a new generator started from the seed.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}
