package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(r tetris.Randomizer, n int) []tetris.Shape {
	out := make([]tetris.Shape, n)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}

func TestBagDealsEveryShapeOncePerBag(t *testing.T) {
	b := tetris.NewBag(42)
	for bag := 0; bag < 20; bag++ {
		assert.ElementsMatch(t, tetris.Shapes[:], draw(b, 7), "bag %d", bag)
	}
}

func TestRandomizersAreDeterministic(t *testing.T) {
	for _, name := range []string{tetris.RandomizerBag, tetris.RandomizerUniform} {
		t.Run(name, func(t *testing.T) {
			a, err := tetris.NewRandomizer(name, 7)
			require.NoError(t, err)
			b, err := tetris.NewRandomizer(name, 7)
			require.NoError(t, err)
			c, err := tetris.NewRandomizer(name, 8)
			require.NoError(t, err)

			first := draw(a, 70)
			assert.Equal(t, first, draw(b, 70))
			assert.NotEqual(t, first, draw(c, 70))

			a.Reset(7)
			assert.Equal(t, first, draw(a, 70), "reset replays the stream")

			for _, s := range first {
				assert.True(t, s.Valid())
			}
		})
	}
}

func TestNewRandomizer(t *testing.T) {
	r, err := tetris.NewRandomizer("", 1)
	require.NoError(t, err)
	assert.IsType(t, &tetris.Bag{}, r)

	_, err = tetris.NewRandomizer("weighted", 1)
	assert.Error(t, err)
}

func TestSequence(t *testing.T) {
	s := tetris.NewSequence(tetris.T, tetris.I)
	assert.Equal(t, []tetris.Shape{tetris.T, tetris.I, tetris.T, tetris.I, tetris.T}, draw(s, 5))

	s.Reset(99)
	assert.Equal(t, tetris.T, s.Next())

	assert.Panics(t, func() { tetris.NewSequence() })
}

func TestQueue(t *testing.T) {
	q := tetris.NewQueue(tetris.NewSequence(tetris.I, tetris.O, tetris.T, tetris.S), 3)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []tetris.Shape{tetris.I, tetris.O, tetris.T}, q.Peek(3))
	assert.Equal(t, []tetris.Shape{tetris.I}, q.Peek(1))

	assert.Equal(t, tetris.I, q.Next())
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []tetris.Shape{tetris.O, tetris.T, tetris.S}, q.Peek(10))

	peek := q.Peek(3)
	peek[0] = tetris.Z
	assert.Equal(t, tetris.O, q.Peek(1)[0], "Peek returns a copy")

	q.Reset(0)
	assert.Equal(t, []tetris.Shape{tetris.I, tetris.O, tetris.T}, q.Peek(3))
}

func TestQueueWithoutPreview(t *testing.T) {
	q := tetris.NewQueue(tetris.NewSequence(tetris.J, tetris.L), 0)

	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Peek(5))
	assert.Equal(t, tetris.J, q.Next())
	assert.Equal(t, tetris.L, q.Next())
	assert.Equal(t, 0, q.Len())
}
