package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer produces the stream of upcoming shapes.
type Randomizer interface {
	Next() Shape
	// Reset restarts the stream from a seed.
	Reset(seed uint64)
}

const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"
)

// NewRandomizer returns the named randomizer policy seeded with seed.
func NewRandomizer(name string, seed uint64) (Randomizer, error) {
	switch name {
	case RandomizerBag, "":
		return NewBag(seed), nil
	case RandomizerUniform:
		return NewUniform(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Bag deals one shuffled copy of every shape before repeating, so no shape
// waits more than 12 pieces.
type Bag struct {
	rng  *rand.Rand
	bag  [shapeCount]Shape
	next int
}

func NewBag(seed uint64) *Bag {
	b := &Bag{}
	b.Reset(seed)
	return b
}

func (b *Bag) Reset(seed uint64) {
	b.rng = newRand(seed)
	b.next = shapeCount
}

func (b *Bag) Next() Shape {
	if b.next == shapeCount {
		b.bag = Shapes
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
		b.next = 0
	}
	s := b.bag[b.next]
	b.next++
	return s
}

// Uniform picks every shape independently with equal probability.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(seed uint64) *Uniform {
	u := &Uniform{}
	u.Reset(seed)
	return u
}

func (u *Uniform) Reset(seed uint64) {
	u.rng = newRand(seed)
}

func (u *Uniform) Next() Shape {
	return Shapes[u.rng.IntN(shapeCount)]
}

// Sequence repeats a fixed list of shapes. The seed is ignored.
type Sequence struct {
	shapes []Shape
	next   int
}

// NewSequence returns a randomizer that cycles through shapes in order.
// It panics if shapes is empty.
func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		panic("tetris: empty sequence")
	}
	return &Sequence{shapes: append([]Shape(nil), shapes...)}
}

func (s *Sequence) Reset(uint64) {
	s.next = 0
}

func (s *Sequence) Next() Shape {
	shape := s.shapes[s.next]
	s.next = (s.next + 1) % len(s.shapes)
	return shape
}

// Queue buffers upcoming shapes from a randomizer so a preview can be shown.
type Queue struct {
	source  Randomizer
	pending []Shape
}

// NewQueue fills a queue holding preview shapes ahead of the current one.
func NewQueue(source Randomizer, preview int) *Queue {
	q := &Queue{source: source}
	q.fill(preview)
	return q
}

func (q *Queue) fill(n int) {
	for len(q.pending) < n {
		q.pending = append(q.pending, q.source.Next())
	}
}

// Next dequeues the next shape and draws a replacement.
func (q *Queue) Next() Shape {
	preview := len(q.pending)
	q.fill(1)
	s := q.pending[0]
	q.pending = append(q.pending[:0], q.pending[1:]...)
	q.fill(preview)
	return s
}

// Peek returns up to n upcoming shapes without consuming them.
func (q *Queue) Peek(n int) []Shape {
	n = min(n, len(q.pending))
	return append([]Shape(nil), q.pending[:n]...)
}

// Len reports the preview length.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Reset reseeds the source and refills the preview.
func (q *Queue) Reset(seed uint64) {
	preview := len(q.pending)
	q.source.Reset(seed)
	q.pending = q.pending[:0]
	q.fill(preview)
}
