package panel

import "github.com/valyala/fastrand"

// Source is the random capability used to pick panels. *rand.Rand from
// math/rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// FastSource draws from the goroutine-safe fastrand generator.
type FastSource struct{}

// Intn implements Source.
func (FastSource) Intn(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

// Random returns a uniformly chosen panel from src. Out-of-range draws fall
// back to Blue, the last panel of the domain.
func Random(src Source) ID {
	switch src.Intn(Count) {
	case 0:
		return Green
	case 1:
		return Red
	case 2:
		return Yellow
	default:
		return Blue
	}
}
