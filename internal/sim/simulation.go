package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paints/internal/config"
	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

// Texts shown by the game.
const (
	Title      = "Paints"
	MenuText   = "[Space] to play,\n[Esc] to exit"
	PausedText = "Paused\n\n[Escape] to continue\n[Return] to go to main menu"
)

// iconName identifies the animated menu icon.
const iconName = "Icon"

// inputEvents maps edge-triggered actions to machine events, in dispatch order.
var inputEvents = []struct {
	action core.Action
	event  Event
}{
	{core.ActionPlay, EventPlay},
	{core.ActionBack, EventBack},
	{core.ActionConfirm, EventConfirm},
}

// Simulation owns the world and runs one cooperative frame at a time.
// It is not safe for concurrent use.
type Simulation struct {
	cfg    config.PaintsConfig
	assets core.Assets
	logger *log.Logger
	rng    *rand.Rand

	world   *ecs.World
	state   State
	game    GameState
	stepper *FixedStepper
	spawner *Spawner
	scorer  *Scorer
	nozzles *Nozzles

	elapsed float64 // Seconds since start, paused or not
	rounds  int
	quit    bool

	pausedText ecs.Entity
	scoreText  ecs.Entity
}

// New creates a simulation in the main menu. Assets are passed through to
// the spawned entities untouched. A nil logger discards output.
func New(cfg config.PaintsConfig, assets core.Assets, logger *log.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	specs, err := cfg.ParsedNozzles()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		cfg:     cfg,
		assets:  assets,
		logger:  logger,
		rng:     rng,
		world:   ecs.NewWorld(),
		state:   State{Phase: PhaseMainMenu},
		stepper: NewFixedStepper(cfg.Runtime().Step()),
		spawner: NewSpawner(cfg, assets, rng),
		scorer:  NewScorer(cfg, logger),
		nozzles: NewNozzles(cfg, specs, assets),
	}
	s.game = newGameState(s.spawner.Cadence())
	s.apply(s.state, []Effect{EffectEnterMenu})

	logger.Debug("simulation ready", "seed", seed, "cadence", s.spawner.Cadence(), "step", s.stepper.Step())
	return s, nil
}

// Frame runs one frame: input transitions, fixed-step motion, spawning,
// scoring, then color animation. Accepted presses are consumed from in.
func (s *Simulation) Frame(dt time.Duration, in *core.InputFrame) {
	secs := dt.Seconds()
	if secs < 0 {
		secs = 0
	}
	s.elapsed += secs

	s.dispatchInput(in)

	if s.state.Phase == PhaseInGame {
		s.updateRound(secs, in)
	}

	switch s.state.Phase {
	case PhaseMainMenu:
		Animate(s.world, ecs.TagMenu, s.elapsed)
	case PhaseInGame:
		if !s.game.Paused {
			Animate(s.world, ecs.TagBanner, s.elapsed)
		}
	}
}

// dispatchInput feeds pressed keys to the machine and stops after the first
// accepted transition.
func (s *Simulation) dispatchInput(in *core.InputFrame) {
	if in == nil {
		return
	}
	for _, ie := range inputEvents {
		if !in.Has(ie.action) {
			continue
		}
		if s.Send(ie.event) {
			in.Consume(ie.action)
			return
		}
	}
}

// Send feeds one event to the state machine and performs its effects.
// It reports whether the event was accepted.
func (s *Simulation) Send(ev Event) bool {
	next, effects, ok := Transition(s.state, ev)
	if !ok {
		return false
	}
	s.logger.Debug("transition", "from", s.state.Phase, "to", next.Phase, "event", ev, "effects", effects)
	s.apply(next, effects)
	return true
}

func (s *Simulation) updateRound(dt float64, in *core.InputFrame) {
	s.fireNozzles(in)

	if !s.game.Paused {
		for i, n := 0, s.stepper.Advance(dt); i < n; i++ {
			Integrate(s.world, s.stepper.Step())
		}
	}

	if b, ok := s.spawner.Update(&s.game, s.world, dt, s.elapsed); ok {
		s.logger.Debug("bucket spawned", "bucket", b.ID, "spawned", s.game.BucketsSpawned)
	}

	if _, complete := s.scorer.Update(&s.game, s.world); complete {
		s.Send(EventRoundComplete)
	}
}

func (s *Simulation) fireNozzles(in *core.InputFrame) {
	if in == nil {
		return
	}
	var shots []int
	for i, a := range core.NozzleActions {
		if in.Consume(a) {
			shots = append(shots, i)
		}
	}
	if in.Consume(core.ActionPointer) {
		if i := s.nozzles.Nearest(in.PointerX); i >= 0 {
			shots = append(shots, i)
		}
	}
	if s.game.Paused {
		return
	}
	for _, i := range shots {
		if b, ok := s.nozzles.Fire(s.world, i); ok {
			s.logger.Debug("nozzle fired", "nozzle", i, "bucket", b.ID)
		}
	}
}

// apply switches to next and performs effects in order.
func (s *Simulation) apply(next State, effects []Effect) {
	s.state = next
	for _, eff := range effects {
		switch eff {
		case EffectEnterMenu:
			s.enterMenu()
		case EffectExitMenu:
			s.world.DespawnTagged(ecs.TagMenu)
		case EffectEnterGame:
			s.enterGame()
		case EffectExitGame:
			s.exitGame()
		case EffectTogglePause:
			s.game.Paused = next.Paused
			if txt, ok := s.world.Text(s.pausedText); ok {
				txt.Visible = s.game.Paused
			}
		case EffectShowScore:
			s.showScore()
		case EffectQuit:
			s.quit = true
		default:
			panic(fmt.Sprintf("sim: unknown effect %v", eff))
		}
	}
}

func (s *Simulation) enterMenu() {
	// One animated entity per title letter so each gets its own hue
	spacing := s.cfg.Screen.Width / 16
	left := -spacing * float64(len(Title)-1) / 2
	for i, r := range Title {
		e := s.world.Spawn()
		s.world.AddTag(e, ecs.TagMenu|ecs.TagAnimated)
		s.world.SetName(e, string(r))
		s.world.SetPosition(e, core.Vec3{X: left + spacing*float64(i), Y: s.cfg.Screen.Height / 4})
		s.world.SetText(e, ecs.Text{Content: string(r), Visible: true})
		s.world.SetSprite(e, ecs.Sprite{Asset: s.assets.Font})
	}

	icon := s.world.Spawn()
	s.world.AddTag(icon, ecs.TagMenu|ecs.TagAnimated)
	s.world.SetName(icon, iconName)
	s.world.SetPosition(icon, core.Vec3{})
	s.world.SetSprite(icon, ecs.Sprite{Asset: s.assets.Icon})

	help := s.world.Spawn()
	s.world.AddTag(help, ecs.TagMenu)
	s.world.SetPosition(help, core.Vec3{Y: -s.cfg.Screen.Height / 4})
	s.world.SetText(help, ecs.Text{Content: MenuText, Visible: true})
	s.world.SetPaint(help, core.ColorWhite)
	s.world.SetSprite(help, ecs.Sprite{Asset: s.assets.Font})

	Animate(s.world, ecs.TagMenu, s.elapsed)
}

func (s *Simulation) enterGame() {
	s.game = newGameState(s.spawner.Cadence())
	s.stepper.Reset()
	s.rounds++

	s.nozzles.Spawn(s.world)

	banner := s.world.Spawn()
	s.world.AddTag(banner, ecs.TagBanner|ecs.TagAnimated)
	s.world.SetName(banner, Title)
	s.world.SetPosition(banner, core.Vec3{Y: s.cfg.Screen.Height/2 - s.cfg.Screen.Height/12})
	s.world.SetText(banner, ecs.Text{Content: Title, Visible: true})
	s.world.SetSprite(banner, ecs.Sprite{Asset: s.assets.Font})

	s.pausedText = s.spawnOverlay(ecs.TagPausedText, PausedText)
	s.scoreText = s.spawnOverlay(ecs.TagScoreText, ScoreText(0))

	Animate(s.world, ecs.TagBanner, s.elapsed)
	s.logger.Info("round started", "round", s.rounds, "buckets", s.spawner.Max())
}

func (s *Simulation) spawnOverlay(tag ecs.Tag, content string) ecs.Entity {
	e := s.world.Spawn()
	s.world.AddTag(e, tag)
	s.world.SetPosition(e, core.Vec3{Z: 10})
	s.world.SetText(e, ecs.Text{Content: content})
	s.world.SetPaint(e, core.ColorWhite)
	s.world.SetSprite(e, ecs.Sprite{Asset: s.assets.Font})
	return e
}

func (s *Simulation) exitGame() {
	s.world.DespawnTagged(ecs.TagBucket | ecs.TagNozzle | ecs.TagPausedText | ecs.TagScoreText | ecs.TagBanner)
	s.nozzles.Clear()
	s.scorer.Reset()
	s.pausedText = ecs.NoEntity
	s.scoreText = ecs.NoEntity
	s.game.Paused = false
	s.logger.Debug("round cleared", "entities", s.world.Len())
}

func (s *Simulation) showScore() {
	s.game.ShowScore = true
	if txt, ok := s.world.Text(s.scoreText); ok {
		txt.Content = ScoreText(s.game.Score)
		txt.Visible = true
	}
	s.logger.Info("round complete", "round", s.rounds, "score", s.game.Score, "display", ScoreText(s.game.Score))
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.state.Phase
}

// State returns the machine state.
func (s *Simulation) State() State {
	return s.state
}

// Game returns a copy of the round bookkeeping.
func (s *Simulation) Game() GameState {
	return s.game
}

// World exposes the entity store for rendering. Callers must not mutate it.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.PaintsConfig {
	return s.cfg
}

// Nozzles returns the nozzles of the current round.
func (s *Simulation) Nozzles() []Nozzle {
	return s.nozzles.List()
}

// Cadence returns the seconds between two bucket spawns.
func (s *Simulation) Cadence() float64 {
	return s.spawner.Cadence()
}

// Elapsed returns the seconds since the simulation started.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Ticks returns the fixed steps run in the current round.
func (s *Simulation) Ticks() uint64 {
	return s.stepper.Ticks()
}

// Rounds returns how many rounds have been started.
func (s *Simulation) Rounds() int {
	return s.rounds
}

// Quit reports whether the player asked to leave from the main menu.
func (s *Simulation) Quit() bool {
	return s.quit
}
