package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/escapecastle/internal/combat"
	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/gamedata"
	"github.com/samdwyer/escapecastle/internal/logger"
	"github.com/samdwyer/escapecastle/internal/telemetry"
	"github.com/samdwyer/escapecastle/internal/timing"
	"github.com/samdwyer/escapecastle/internal/typewriter"
	"github.com/samdwyer/escapecastle/internal/world"
)

// Event tells Run that a tick needs something from outside the loop.
type Event int

const (
	EventNone Event = iota
	EventPause
	EventQuit
	EventGameOver
	EventVictory
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventPause:
		return "pause"
	case EventQuit:
		return "quit"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Content is the data a run draws from.
type Content struct {
	Variants []gamedata.Variant
	Enemies  *gamedata.EnemyRegistry
}

// LoadContent loads junction variants and enemies. Failures are logged and
// leave the affected table empty.
func LoadContent(cfg Config) Content {
	var (
		variants []gamedata.Variant
		err      error
	)
	if cfg.VariationsFile != "" {
		variants, err = gamedata.LoadVariantsFile(cfg.VariationsFile)
	} else {
		variants, err = gamedata.LoadVariants()
	}
	if err != nil {
		logger.Log.WithError(err).WithField("file", cfg.VariationsFile).Warn("junction variants unavailable")
		variants = nil
	}

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		logger.Log.WithError(err).Warn("enemy table unavailable")
		enemies = gamedata.NewEnemyRegistry(nil)
	}

	return Content{Variants: variants, Enemies: enemies}
}

// Game holds the entire game state.
type Game struct {
	cfg    Config
	runID  string
	preset gamedata.Preset

	rng dice.Rand // Outcomes
	fx  dice.Rand // Shake and reminders, so visuals never shift outcomes

	clock    timing.Clock
	nav      *world.Navigator
	resolver *world.Resolver
	tw       *typewriter.Typewriter

	state   State
	session *Session
	frame   Frame
	started bool
}

// New creates a game for p.
func New(cfg Config, p *entity.Player, content Content) *Game {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	enemies := content.Enemies
	if enemies == nil {
		enemies = gamedata.NewEnemyRegistry(nil)
	}
	nav := world.NewNavigator(content.Variants, rng)

	g := &Game{
		cfg:      cfg,
		runID:    uuid.NewString(),
		preset:   gamedata.MustPresetFor(p.Difficulty),
		rng:      rng,
		fx:       rand.New(rand.NewSource(seed + 1)),
		clock:    timing.SystemClock{},
		nav:      nav,
		resolver: world.NewResolver(enemies, rng),
		tw:       typewriter.New(cfg.TypingDelay),
		state:    StateWelcome,
		session:  NewSession(p),
	}

	log := logger.Log.WithFields(logrus.Fields{
		"run":       g.runID,
		"junctions": nav.Len(),
		"enemies":   enemies.Count(),
	})
	if nav.Len() == 0 || enemies.Count() == 0 {
		log.Warn("run has incomplete content")
	} else {
		log.Debug("content ready")
	}
	return g
}

// RunID identifies this run in logs and traces.
func (g *Game) RunID() string { return g.runID }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.session.Player }

// Session returns the run's mutable state.
func (g *Game) Session() *Session { return g.session }

// Frame returns the snapshot built by the last Tick.
func (g *Game) Frame() Frame { return g.frame }

// Start types the welcome greeting. Tick calls it if it has not run yet.
func (g *Game) Start(now time.Time) {
	g.started = true
	g.state = StateWelcome
	g.tw.Start(typewriter.ModeWelcome, welcomeLines(g.session.Player), now)
}

// Run drives Tick at the configured frame rate, drawing each frame, until the
// run ends or the player leaves. It returns what the player chose last.
func (g *Game) Run(ctx context.Context, fe Frontend) MenuAction {
	p := g.session.Player
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.run")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("player.difficulty", p.Difficulty.String()),
		attribute.Int("player.starting_level", p.StartingLevel),
	)
	defer span.End()

	log := logger.Log.WithField("run", g.runID)
	log.WithFields(logrus.Fields{
		"difficulty": p.Difficulty,
		"level":      p.Level,
	}).Info("run started")

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	result := MenuExitGame
	defer func() {
		span.SetAttributes(
			attribute.String("run.result", result.String()),
			attribute.Int("player.health", p.Health),
			attribute.Int("player.level", p.Level),
			attribute.Int("run.encounters", g.session.Encounters),
		)
		log.WithField("result", result).Info("run ended")
	}()

	for {
		select {
		case <-ctx.Done():
			return result
		case <-ticker.C:
		}

		ev := g.Tick(ctx, g.clock.Now(), fe.Inputs())
		fe.Draw(g.frame)

		switch ev {
		case EventPause:
			switch a := fe.Pause(ctx); a {
			case MenuExitMainMenu, MenuExitGame:
				result = a
				return result
			}
		case EventQuit:
			return result
		case EventGameOver:
			result = fe.GameOver(ctx)
			return result
		case EventVictory:
			result = fe.Victory(ctx, p)
			return result
		}
	}
}

// Tick advances the game by one frame.
func (g *Game) Tick(ctx context.Context, now time.Time, inputs []Input) Event {
	if !g.started {
		g.Start(now)
	}
	s := g.session
	p := s.Player

	if g.state == StateOver {
		if p.IsAlive() {
			return EventVictory
		}
		return EventGameOver
	}
	if !p.IsAlive() {
		g.endRun(ctx, "defeat")
		return EventGameOver
	}
	if p.Level <= 1 && g.state != StateBoss {
		g.startBoss(ctx)
	}

	if s.Dwell.Elapsed(now) && (g.state == StateDwell || g.state == StateWelcome) {
		s.Dwell.Stop()
		g.offerChoices(ctx, now)
	}

	for _, in := range inputs {
		if ev := g.handleInput(ctx, now, in); ev != EventNone {
			return ev
		}
	}

	if s.Combat != nil {
		g.tw.Push(s.Combat.Advance(now)...)
		if ev := g.settleEncounter(ctx, now); ev != EventNone {
			g.frame = g.buildFrame()
			return ev
		}
	}

	g.frame = g.buildFrame()

	s.Fade.Step()
	if g.tw.Update(now) {
		g.revealed(now)
	}
	return EventNone
}

func (g *Game) handleInput(ctx context.Context, now time.Time, in Input) Event {
	switch in {
	case InputPause:
		return EventPause
	case InputQuit:
		return EventQuit
	}

	if g.state == StateChoosing {
		if d, ok := in.Digit(); ok && !g.tw.Revealing() {
			g.choose(ctx, now, d)
		}
		return EventNone
	}

	c := g.session.Combat
	if !g.state.Fighting() || c == nil || g.tw.Revealing() {
		return EventNone
	}
	switch in {
	case InputAttack:
		g.tw.Push(c.Attack(now)...)
	case InputSpell:
		g.tw.Push(c.CastSpell(now)...)
	case InputFlee:
		g.tw.Push(c.Flee(now)...)
	}
	return EventNone
}

func (g *Game) choose(ctx context.Context, now time.Time, digit int) {
	s := g.session
	idx := digit - 1
	if idx < 0 || idx >= len(s.Choices) {
		g.tw.Push(invalidChoice)
		return
	}

	choice := s.Choices[idx]
	s.Choices = nil
	out := g.resolver.Resolve(s.Player, choice)

	logger.Log.WithFields(logrus.Fields{
		"run":     g.runID,
		"action":  choice.Action,
		"outcome": out.Kind,
		"level":   s.Player.Level,
	}).Debug("passage chosen")

	switch out.Kind {
	case world.OutcomeBattle:
		g.tw.Start(typewriter.ModeCombat, out.Lines, now)
		g.startEncounter(ctx, combat.KindRegular, out.Enemy)
		g.state = StateBattle
	case world.OutcomeContinue:
		lines := append([]string{chosenLine(choice)}, out.Lines...)
		g.tw.Start(typewriter.ModeChoices, lines, now)
		g.narrate(now)
	}
}

func (g *Game) startEncounter(ctx context.Context, kind combat.Kind, enemy *entity.Enemy) {
	s := g.session
	runChance := g.preset.RunChance
	if kind == combat.KindBoss {
		runChance = 0
	}
	s.Combat = combat.NewController(kind, s.Player, enemy, g.rng, runChance)
	s.Fade.In(enemy.ArtKey())
	s.Encounters++

	name := "encounter.start"
	if kind == combat.KindBoss {
		name = "boss.start"
	}
	_, span := telemetry.Tracer("combat").Start(ctx, name)
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("enemy.name", enemy.Name),
		attribute.Int("enemy.health", enemy.Health),
		attribute.Int("player.health", s.Player.Health),
		attribute.Int("player.level", s.Player.Level),
	)
	span.End()
}

func (g *Game) startBoss(ctx context.Context) {
	s := g.session
	s.Choices = nil
	s.Dwell.Stop()
	g.startEncounter(ctx, combat.KindBoss, entity.NewBoss(g.preset))
	g.tw.Show([]string{bossIntro})
	g.state = StateBoss
}

// settleEncounter reacts to a controller that has reached a terminal phase.
func (g *Game) settleEncounter(ctx context.Context, now time.Time) Event {
	s := g.session
	c := s.Combat
	if !c.Done() {
		return EventNone
	}

	g.endEncounter(ctx, c)
	s.EndEncounter()

	switch c.Phase() {
	case combat.PhaseVictory:
		if c.Kind() == combat.KindBoss {
			g.endRun(ctx, "victory")
			return EventVictory
		}
		g.tw.Show(g.tw.Lines())
		g.dwell(now, CombatDwell)
	case combat.PhaseFled:
		// The escape retypes the whole encounter log.
		g.tw.Start(typewriter.ModeCombat, g.tw.Lines(), now)
		g.narrate(now)
	case combat.PhaseDefeat:
		g.endRun(ctx, "defeat")
		return EventGameOver
	}
	return EventNone
}

func (g *Game) endEncounter(ctx context.Context, c *combat.Controller) {
	_, span := telemetry.Tracer("combat").Start(ctx, "encounter.end")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("outcome", c.Phase().String()),
		attribute.String("encounter.kind", c.Kind().String()),
		attribute.Int("player.health", g.session.Player.Health),
	)
	span.End()
}

func (g *Game) endRun(ctx context.Context, outcome string) {
	g.state = StateOver
	g.session.Combat = nil
	logger.Log.WithFields(logrus.Fields{
		"run":        g.runID,
		"outcome":    outcome,
		"level":      g.session.Player.Level,
		"encounters": g.session.Encounters,
	}).Info("run over")
}

// narrate waits for the log to finish typing before dwelling.
func (g *Game) narrate(now time.Time) {
	g.state = StateNarrating
	if !g.tw.Revealing() {
		g.dwell(now, g.cfg.NarrationDwell)
	}
}

func (g *Game) dwell(now time.Time, d time.Duration) {
	g.state = StateDwell
	g.session.Dwell = timing.NewTimer(now, d)
}

// revealed is called when the typewriter finishes a reveal.
func (g *Game) revealed(now time.Time) {
	switch g.state {
	case StateWelcome:
		g.session.Dwell = timing.NewTimer(now, WelcomeDwell)
	case StateNarrating:
		g.dwell(now, g.cfg.NarrationDwell)
	}
}

func (g *Game) offerChoices(ctx context.Context, now time.Time) {
	s := g.session
	s.Choices = g.nav.GenerateChoices(ctx, s.Player)
	g.tw.Start(typewriter.ModeChoices, choiceLines(g.fx, s.Player.Level, s.Choices), now)
	g.state = StateChoosing
}

func (g *Game) buildFrame() Frame {
	s := g.session
	p := s.Player
	f := Frame{
		State: g.state,
		Log:   g.tw.Visible(),
		Status: Status{
			Name:       p.Name,
			Difficulty: p.Difficulty.String(),
			Health:     p.Health,
			MaxHealth:  p.MaxHealth,
			Level:      p.Level,
			Spells:     p.Spells,
		},
		Instruction: g.instruction(),
	}
	if p.CurrentVariant != nil {
		f.VariantArt = p.CurrentVariant.Image
	}

	if s.Fade.ArtKey != "" {
		f.EnemyArt = s.Fade.ArtKey
		f.EnemyAlpha = s.Fade.Alpha
		f.EnemyColor = g.enemyColor()
	}
	if c := s.Combat; c != nil {
		if c.IsEnemyAttacking() {
			f.Background = Offset{
				X: combat.ShakeOffset(g.fx, BackgroundShake),
				Y: combat.ShakeOffset(g.fx, BackgroundShake),
			}
		}
		if c.IsPlayerAttacking() {
			f.EnemyShake = Offset{
				X: combat.ShakeOffset(g.fx, EnemyShake),
				Y: combat.ShakeOffset(g.fx, EnemyShake),
			}
		}
	}
	return f
}

func (g *Game) enemyColor() tcell.Color {
	if e := g.session.Enemy(); e != nil {
		return e.Color()
	}
	return g.frame.EnemyColor
}

func (g *Game) instruction() string {
	switch g.state {
	case StateBattle:
		return battleInstruction
	case StateBoss:
		return bossInstruction
	default:
		return choiceInstruction
	}
}
