package seed

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Jan 1, 2020 (to keep generated file names a little shorter)
const epoch2020 = 1577836800

// Seed holds the value every random stream of a run is derived from, so a
// run can be repeated by passing the same hex string back in
type Seed struct {
	value uint64
}

// Init returns a seed parsed from hexSeed, or one taken from the clock
// when hexSeed is empty
func Init(hexSeed string) (Seed, error) {
	if hexSeed == "" {
		return Seed{value: uint64(time.Now().UnixNano() - epoch2020)}, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(hexSeed, "0x"), 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("seed must be hexadecimal: %w", err)
	}
	return Seed{value: v}, nil
}

// Hex returns the seed in the form Init accepts
func (s Seed) Hex() string {
	return strconv.FormatUint(s.value, 16)
}

// Source returns a fresh deterministic source. Each stream gets an
// independent sequence from the same seed.
func (s Seed) Source(stream uint64) rand.Source {
	return rand.NewPCG(s.value, stream)
}

// Rand returns a generator over Source(stream)
func (s Seed) Rand(stream uint64) *rand.Rand {
	return rand.New(s.Source(stream))
}

// Filename stamps the seed into an output name: prefix-<seed><ext>
func (s Seed) Filename(prefix, ext string) string {
	return fmt.Sprintf("%s-%s%s", prefix, s.Hex(), ext)
}
