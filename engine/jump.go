package engine

import "github.com/wippyai/randcore/errors"

// polyJump applies a GF(2) jump polynomial to a shift-register state.
// The masks encode "advance by 2^k steps" as a characteristic-polynomial
// power: for every bit of every mask the current state is folded into the
// accumulator when the bit is set, and the generator is stepped once
// either way. The accumulator then replaces the state.
func polyJump(masks []uint64, state []uint64, step func()) {
	acc := make([]uint64, len(state))
	for _, m := range masks {
		for b := 0; b < 64; b++ {
			if m&(1<<uint(b)) != 0 {
				for i := range state {
					acc[i] ^= state[i]
				}
			}
			step()
		}
	}
	copy(state, acc)
}

func unsupported(engine, op string) error {
	return errors.Unsupported(engine, op)
}
