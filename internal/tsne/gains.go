package tsne

import (
	"fmt"

	"github.com/born-ml/bhtsne/internal/parallel"
)

// Gain update constants.
const (
	GainIncrement = 0.2
	GainDecay     = 0.8
	MinGain       = 0.01
)

// UpdateGain returns the next gain for one coordinate. When the gradient and
// the previous step disagree in sign the gain grows by GainIncrement,
// otherwise it shrinks by GainDecay. The result is never below MinGain.
// Zero has its own sign, distinct from both positive and negative.
func UpdateGain[T Float](gain, grad, prevStep T) T {
	var next T
	if sign(grad) != sign(prevStep) {
		next = gain + GainIncrement
	} else {
		next = gain * GainDecay
	}
	if next < MinGain {
		next = MinGain
	}
	return next
}

// UpdateGains applies UpdateGain elementwise, writing into out.
// out may alias gains for an in-place update.
func UpdateGains[T Float](gains, grads, steps, out []T, cfg parallel.Config) error {
	n := len(gains)
	if len(grads) != n || len(steps) != n || len(out) != n {
		return fmt.Errorf("update gains: lengths gains=%d grads=%d steps=%d out=%d: %w",
			n, len(grads), len(steps), len(out), ErrShapeMismatch)
	}

	parallel.ForRange(0, n, func(start, stop int) {
		for i := start; i < stop; i++ {
			out[i] = UpdateGain(gains[i], grads[i], steps[i])
		}
	}, cfg)
	return nil
}

func sign[T Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
