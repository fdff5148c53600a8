package deck

import (
	"fmt"
	"time"

	"go.dedis.ch/kyber/v4/util/random"
)

// GenerateRoundSeed returns a fresh seed string mixing the current
// timestamp with 64 bits of cryptographic entropy. A shuffle replays
// exactly for a given seed, so callers must take a fresh seed per
// round; the engine never checks for reuse.
func GenerateRoundSeed() string {
	entropy := random.Bits(64, false, random.New())
	return fmt.Sprintf("%d-%x", time.Now().UnixNano(), entropy)
}
