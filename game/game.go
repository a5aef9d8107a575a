package game

import (
	"fmt"
	"log"
	"maze-game/config"
	"maze-game/game/layout"
	"maze-game/game/manager"
	"maze-game/game/physics"
	"maze-game/game/types"
	"maze-game/maze"
	"time"

	"github.com/google/uuid"
)

// maxStep bounds a single physics step so a stalled frame cannot tunnel
// the ball through a one-pixel wall.
const maxStep = 1.0 / 30

type Game struct {
	ID        string
	Maze      *maze.Maze
	Layout    layout.Layout
	World     *physics.World
	Stats     *SessionStats
	StartTime time.Time

	cfg        config.Config
	generator  *maze.Generator
	state      *manager.StateManager
	collisions *manager.CollisionManager
	controls   *manager.ControlManager

	keyPresses   int
	resetVisible bool
	hint         bool
	now          func() time.Time
}

func NewGame(cfg config.Config, rng maze.Source) (*Game, error) {
	g := &Game{
		Stats:     NewSessionStats(),
		cfg:       cfg,
		generator: maze.NewGenerator(rng),
		controls:  manager.NewControlManager(cfg.VelocityStep),
		now:       time.Now,
	}
	g.state = manager.NewStateManager(winEffects{g})
	g.collisions = manager.NewCollisionManager(g.state)

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset throws the current run away and starts a new one on a freshly
// generated maze.
func (g *Game) Reset() error {
	m, err := g.generator.GenerateRandom(g.cfg.Rows, g.cfg.Cols)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}

	l := layout.Build(m, float64(g.cfg.WindowWidth), float64(g.cfg.WindowHeight))

	world := physics.NewWorld(g.cfg.BallDamping)
	for _, r := range l.Statics() {
		world.AddRect(r)
	}
	world.AddBall(l.Ball)
	world.OnCollision(func(a, b types.Tag) {
		g.collisions.HandleCollision(a, b)
	})

	g.ID = uuid.New().String()
	g.Maze = m
	g.Layout = l
	g.World = world
	g.StartTime = g.now()
	g.keyPresses = 0
	g.resetVisible = false
	g.state.Reset()
	g.collisions.Reset()

	log.Printf("%s [INFO] run %s: %dx%d maze, %d walls", config.LogGame, g.ID, m.Rows, m.Cols, len(l.Walls))
	return nil
}

// HandleKey applies one key press.
func (g *Game) HandleKey(key types.Key) error {
	switch key {
	case types.KeyReset:
		return g.Reset()
	case types.KeyHint:
		g.hint = !g.hint
		return nil
	}

	v, ok := g.controls.Apply(key, g.World.BallVelocity())
	if !ok {
		return nil
	}
	g.World.SetBallVelocity(v)
	g.keyPresses++
	return nil
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float64) {
	if dt <= 0 {
		return
	}
	g.World.Step(min(dt, maxStep))
}

func (g *Game) Phase() types.Phase {
	return g.state.Phase()
}

// ResetVisible reports whether the reset affordance should be shown.
func (g *Game) ResetVisible() bool {
	return g.resetVisible
}

func (g *Game) HintVisible() bool {
	return g.hint
}

// HintPath is the route from the ball's current cell to the goal cell,
// as viewport points, or nil when the hint is off.
func (g *Game) HintPath() []types.Vec {
	if !g.hint {
		return nil
	}
	from := g.Layout.CellAt(g.World.Ball().Position, g.Maze.Rows, g.Maze.Cols)
	to := maze.Cell{Row: g.Maze.Rows - 1, Col: g.Maze.Cols - 1}

	cells := g.Maze.Solve(from, to)
	points := make([]types.Vec, 0, len(cells))
	for _, c := range cells {
		points = append(points, g.Layout.CellCenter(c))
	}
	return points
}

func (g *Game) Elapsed() time.Duration {
	return g.now().Sub(g.StartTime)
}

func (g *Game) KeyPresses() int {
	return g.keyPresses
}

func (g *Game) WallHits() int {
	return g.collisions.WallHits()
}

// winEffects carries out the win transition against the current run.
type winEffects struct {
	g *Game
}

func (e winEffects) ReleaseWalls() {
	e.g.World.ReleaseWalls()
}

func (e winEffects) EnableGravity() {
	e.g.World.EnableGravity(e.g.cfg.WinGravity)
}

func (e winEffects) ShowReset() {
	g := e.g
	g.resetVisible = true
	record := g.Stats.AddRun(g.ID, g.StartTime, g.now(), g.keyPresses, g.WallHits())
	log.Printf("%s [INFO] run %s won in %.2fs (%d key presses, %d wall hits)",
		config.LogGame, g.ID, record.Duration, record.KeyPresses, record.WallHits)
}
