// Package tetris implements the rules of a falling-block puzzle session:
// the grid, pieces and their rotation tables, the shape randomizers, and a
// tick-driven state machine covering gravity, lock delay, line clears,
// scoring and hold. It does no rendering and reads no input devices.
package tetris

import "time"

// Phase is the state of a session.
type Phase uint8

const (
	// PhaseSpawning waits out the entry delay before the next piece appears.
	PhaseSpawning Phase = iota
	// PhaseFalling has an active piece that can still move down.
	PhaseFalling
	// PhaseLocking has a grounded piece running its lock delay.
	PhaseLocking
	// PhaseLineClear waits out the line clear delay after rows were removed.
	PhaseLineClear
	// PhaseGameOver is terminal until Reset.
	PhaseGameOver
)

var phaseNames = [...]string{"spawning", "falling", "locking", "line-clear", "game-over"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// LockResult describes one piece merging into the grid.
type LockResult struct {
	Piece   Piece
	Dropped int // rows fallen by hard drop before locking
	Lines   int
	Points  int
}

// Game is a single session. It is not safe for concurrent use; one driver
// owns it and calls Tick and the input operations serially.
type Game struct {
	cfg   Config
	grid  *Grid
	queue *Queue

	active    Piece
	hasActive bool
	held      Shape
	hasHeld   bool
	holdUsed  bool

	phase Phase
	score int
	level int
	lines int
	locks int
	last  LockResult

	fallTimer  time.Duration
	lockTimer  time.Duration
	lockResets int
	lowestY    int
	delay      time.Duration
	softDrop   bool
}

// New creates a session using the randomizer named by cfg.Randomizer.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r, err := NewRandomizer(cfg.Randomizer, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, r), nil
}

// NewWithRandomizer creates a session drawing shapes from r. The
// randomizer is reset with cfg.Seed.
func NewWithRandomizer(cfg Config, r Randomizer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r.Reset(cfg.Seed)
	return newGame(cfg, r), nil
}

func newGame(cfg Config, r Randomizer) *Game {
	g := &Game{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height+cfg.BufferRows),
		queue: NewQueue(r, cfg.Preview),
	}
	g.resetState()
	return g
}

// Reset starts a new session with the same rules and a new seed.
func (g *Game) Reset(seed uint64) {
	g.cfg.Seed = seed
	g.grid.Reset()
	g.queue.Reset(seed)
	g.resetState()
}

func (g *Game) resetState() {
	g.active = Piece{}
	g.hasActive = false
	g.held = 0
	g.hasHeld = false
	g.holdUsed = false
	g.phase = PhaseSpawning
	g.score = 0
	g.level = g.cfg.StartLevel
	g.lines = 0
	g.locks = 0
	g.last = LockResult{}
	g.fallTimer = 0
	g.lockTimer = 0
	g.lockResets = 0
	g.lowestY = 0
	g.delay = 0
	g.softDrop = false
}

// SpawnPosition returns where a shape enters the grid.
func (g *Game) SpawnPosition(s Shape) Piece {
	return Piece{
		Shape:    s,
		Rotation: Rotation0,
		X:        (g.cfg.Width - 4) / 2,
		Y:        max(g.cfg.BufferRows-2, 0),
	}
}

// SpawnNext dequeues the next shape and places it at the spawn position.
// If the spawn cells are occupied the session ends with ErrGameOver and
// the grid is left as it was.
func (g *Game) SpawnNext() error {
	if g.phase == PhaseGameOver {
		return ErrGameOver
	}
	if g.hasActive {
		return ErrPieceActive
	}
	g.delay = 0
	if err := g.spawn(g.queue.Next()); err != nil {
		return err
	}
	g.holdUsed = false
	return nil
}

func (g *Game) spawn(s Shape) error {
	p := g.SpawnPosition(s)
	if !g.grid.Fits(p) {
		g.hasActive = false
		g.phase = PhaseGameOver
		return ErrGameOver
	}
	g.active = p
	g.hasActive = true
	g.fallTimer = 0
	g.lockTimer = 0
	g.lockResets = 0
	g.lowestY = p.Y
	g.updateGrounded()
	return nil
}

func (g *Game) playable() error {
	if g.phase == PhaseGameOver {
		return ErrGameOver
	}
	if !g.hasActive {
		return ErrNoActivePiece
	}
	return nil
}

// Move translates the active piece one cell. A blocked move returns
// ErrInvalidMove and changes nothing.
func (g *Game) Move(dir Direction) error {
	if err := g.playable(); err != nil {
		return err
	}
	dx, dy := dir.Delta()
	moved := g.active.Moved(dx, dy)
	if !g.grid.Fits(moved) {
		return ErrInvalidMove
	}
	grounded := g.phase == PhaseLocking
	g.active = moved
	if dir == Down {
		g.fallTimer = 0
	}
	g.afterMove(grounded)
	return nil
}

// Rotate turns the active piece, trying each wall kick in order. If every
// kick collides it returns ErrInvalidRotation and changes nothing.
func (g *Game) Rotate(spin Spin) error {
	if err := g.playable(); err != nil {
		return err
	}
	rotated := g.active.Rotated(spin)
	for _, k := range Kicks(g.active.Shape, g.active.Rotation, spin) {
		candidate := rotated.Moved(k.X, k.Y)
		if g.grid.Fits(candidate) {
			grounded := g.phase == PhaseLocking
			g.active = candidate
			g.afterMove(grounded)
			return nil
		}
	}
	return ErrInvalidRotation
}

// afterMove applies the lock delay reset policy: reaching a new lowest row
// restores the reset budget, and a move made while grounded restarts the
// lock timer while budget remains.
func (g *Game) afterMove(wasGrounded bool) {
	switch {
	case g.active.Y > g.lowestY:
		g.lowestY = g.active.Y
		g.lockResets = 0
		g.lockTimer = 0
	case wasGrounded && g.lockResets < g.cfg.MaxLockResets:
		g.lockResets++
		g.lockTimer = 0
	}
	g.updateGrounded()
}

func (g *Game) updateGrounded() {
	if g.grid.Fits(g.active.Moved(0, 1)) {
		g.phase = PhaseFalling
		return
	}
	g.phase = PhaseLocking
	g.fallTimer = 0
}

// SoftDrop turns accelerated gravity on or off. Rows fallen while it is on
// score one point each. The piece still locks through the lock delay.
func (g *Game) SoftDrop(held bool) {
	g.softDrop = held
}

// HardDrop moves the active piece to its lowest legal position and locks it.
// The returned error is ErrGameOver if the following spawn was blocked.
func (g *Game) HardDrop() (LockResult, error) {
	if err := g.playable(); err != nil {
		return LockResult{}, err
	}
	dropped := 0
	for g.grid.Fits(g.active.Moved(0, 1)) {
		g.active.Y++
		dropped++
	}
	g.score += dropped * hardDropPoints
	return g.lock(dropped)
}

// Hold stores the active piece and brings in the held one, or the next
// queued shape when nothing is held yet. It can be used once per spawn.
func (g *Game) Hold() error {
	if err := g.playable(); err != nil {
		return err
	}
	if g.cfg.DisableHold || g.holdUsed {
		return ErrHoldUnavailable
	}
	next, ok := g.held, g.hasHeld
	if !ok {
		next = g.queue.Next()
	}
	g.held = g.active.Shape
	g.hasHeld = true
	g.holdUsed = true
	return g.spawn(next)
}

// EvaluateLines removes every full row, shifts the rows above down, adds
// the score for the event and returns the number of rows removed.
func (g *Game) EvaluateLines() int {
	n, _ := g.evaluateLines()
	return n
}

func (g *Game) evaluateLines() (int, int) {
	n := g.grid.ClearLines()
	if n == 0 {
		return 0, 0
	}
	points := LineScore(n, g.level)
	g.score += points
	g.lines += n
	g.level = max(g.level, LevelFor(g.cfg.StartLevel, g.lines, g.cfg.LinesPerLevel))
	return n, points
}

// lock merges the active piece, clears lines and moves on to the line clear
// delay, the entry delay or straight to the next spawn.
func (g *Game) lock(dropped int) (LockResult, error) {
	piece := g.active
	g.grid.Place(piece)
	g.hasActive = false
	g.locks++

	lines, points := g.evaluateLines()
	g.last = LockResult{
		Piece:   piece,
		Dropped: dropped,
		Lines:   lines,
		Points:  points + dropped*hardDropPoints,
	}

	if lines > 0 && g.cfg.LineClearDelay > 0 {
		g.phase = PhaseLineClear
		g.delay = g.cfg.LineClearDelay
		return g.last, nil
	}
	return g.last, g.beginSpawn()
}

func (g *Game) beginSpawn() error {
	g.phase = PhaseSpawning
	g.delay = g.cfg.EntryDelay
	if g.delay > 0 {
		return nil
	}
	return g.SpawnNext()
}

// Tick advances the session by elapsed time: gravity, lock delay, and the
// line clear and entry delays. Time left over after a phase ends is carried
// into the next one. It returns ErrGameOver once the session has ended.
func (g *Game) Tick(elapsed time.Duration) error {
	remaining := max(elapsed, 0)
	for {
		switch g.phase {
		case PhaseGameOver:
			return ErrGameOver

		case PhaseSpawning:
			if g.delay > remaining {
				g.delay -= remaining
				return nil
			}
			remaining -= g.delay
			if err := g.SpawnNext(); err != nil {
				return err
			}

		case PhaseLineClear:
			if g.delay > remaining {
				g.delay -= remaining
				return nil
			}
			remaining -= g.delay
			if err := g.beginSpawn(); err != nil {
				return err
			}

		case PhaseFalling:
			need := max(g.gravity()-g.fallTimer, 0)
			if need > remaining {
				g.fallTimer += remaining
				return nil
			}
			remaining -= need
			g.fall()

		case PhaseLocking:
			need := max(g.cfg.LockDelay-g.lockTimer, 0)
			if need > remaining {
				g.lockTimer += remaining
				return nil
			}
			remaining -= need
			if _, err := g.lock(0); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

func (g *Game) fall() {
	g.fallTimer = 0
	down := g.active.Moved(0, 1)
	if g.grid.Fits(down) {
		g.active = down
		if g.softDrop {
			g.score += softDropPoints
		}
		if g.active.Y > g.lowestY {
			g.lowestY = g.active.Y
			g.lockResets = 0
			g.lockTimer = 0
		}
	}
	g.updateGrounded()
}

// gravity returns the current time per row, including soft drop.
func (g *Game) gravity() time.Duration {
	interval := g.cfg.Gravity
	if interval == 0 {
		interval = GravityInterval(g.level)
	}
	if g.softDrop {
		interval /= time.Duration(g.cfg.SoftDropFactor)
	}
	return max(interval, time.Nanosecond)
}

// Apply performs an input action.
func (g *Game) Apply(a Action) error {
	switch a {
	case ActionMoveLeft:
		return g.Move(Left)
	case ActionMoveRight:
		return g.Move(Right)
	case ActionMoveDown:
		return g.Move(Down)
	case ActionRotateCW:
		return g.Rotate(Clockwise)
	case ActionRotateCCW:
		return g.Rotate(CounterClockwise)
	case ActionHardDrop:
		_, err := g.HardDrop()
		return err
	case ActionHold:
		return g.Hold()
	case ActionSoftDropOn:
		g.SoftDrop(true)
		return nil
	case ActionSoftDropOff:
		g.SoftDrop(false)
		return nil
	}
	return ErrUnknownAction
}

// Config returns the session rules.
func (g *Game) Config() Config { return g.cfg }

// Width returns the number of columns.
func (g *Game) Width() int { return g.cfg.Width }

// Height returns the number of visible rows.
func (g *Game) Height() int { return g.cfg.Height }

// BufferRows returns the number of hidden rows above the visible field.
// Cell and Grid coordinates include them: visible row 0 is Y = BufferRows.
func (g *Game) BufferRows() int { return g.cfg.BufferRows }

// Cell returns a locked cell. The active piece is not included.
func (g *Game) Cell(x, y int) Cell { return g.grid.At(x, y) }

// Grid returns a copy of the locked cells.
func (g *Game) Grid() *Grid { return g.grid.Clone() }

// Active returns the falling piece, if any.
func (g *Game) Active() (Piece, bool) { return g.active, g.hasActive }

// Ghost returns where the active piece would land on a hard drop.
func (g *Game) Ghost() (Piece, bool) {
	if !g.hasActive {
		return Piece{}, false
	}
	p := g.active
	for g.grid.Fits(p.Moved(0, 1)) {
		p.Y++
	}
	return p, true
}

// Held returns the held shape, if any.
func (g *Game) Held() (Shape, bool) { return g.held, g.hasHeld }

// HoldAvailable reports whether Hold would be accepted now.
func (g *Game) HoldAvailable() bool {
	return !g.cfg.DisableHold && !g.holdUsed && g.hasActive && g.phase != PhaseGameOver
}

// Preview returns the upcoming shapes, next first.
func (g *Game) Preview() []Shape { return g.queue.Peek(g.cfg.Preview) }

func (g *Game) Score() int   { return g.score }
func (g *Game) Level() int   { return g.level }
func (g *Game) Lines() int   { return g.lines }
func (g *Game) Locks() int   { return g.locks }
func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Over() bool   { return g.phase == PhaseGameOver }

// LastLock returns the most recent lock event.
func (g *Game) LastLock() LockResult { return g.last }
