package sound

import (
	"testing"
	"time"

	"Simon/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneLength(t *testing.T) {
	for _, id := range panel.All {
		s, err := Tone(id, 100*time.Millisecond)
		require.NoError(t, err, id.String())

		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		assert.Equal(t, SampleRate.N(100*time.Millisecond), total, id.String())
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(false, nil)

	assert.False(t, p.Enabled())
	p.Play(panel.Green, time.Second)
}
