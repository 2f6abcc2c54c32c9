package playing

import (
	"math/rand"

	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

// minShake is the magnitude below which the shake stops
const minShake = 0.1

// screenShake jitters the camera after a dash and decays every tick
type screenShake struct {
	magnitude float64
	decay     float64
	x, y      float64
}

func (s *screenShake) kick(cfg config.ScreenShakeConfig) {
	if !cfg.Enabled || cfg.Intensity <= 0 {
		return
	}
	s.magnitude = max(s.magnitude, cfg.Intensity)
	s.decay = cfg.Decay
}

func (s *screenShake) update(rng *rand.Rand) {
	if s.magnitude < minShake {
		*s = screenShake{}
		return
	}
	s.x = (2*rng.Float64() - 1) * s.magnitude
	s.y = (2*rng.Float64() - 1) * s.magnitude
	s.magnitude *= s.decay
}

func (s *screenShake) active() bool {
	return s.magnitude >= minShake
}
