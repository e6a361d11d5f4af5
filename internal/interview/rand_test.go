package interview

// fixedRand pins every pick to the first option and makes shuffles no-ops.
type fixedRand struct{}

func (fixedRand) Intn(n int) int                    { return 0 }
func (fixedRand) Shuffle(n int, swap func(i, j int)) {}
