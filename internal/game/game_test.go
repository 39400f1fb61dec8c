package game

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/escapecastle/internal/combat"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/gamedata"
	"github.com/samdwyer/escapecastle/internal/timing"
	"github.com/samdwyer/escapecastle/internal/typewriter"
	"github.com/samdwyer/escapecastle/internal/world"
)

var epoch = time.Unix(1_700_000_000, 0)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.FPS = 1000
	cfg.TypingDelay = time.Millisecond
	return cfg
}

func newTestGame(t *testing.T, level int) (*Game, *timing.ManualClock) {
	t.Helper()
	cfg := testConfig()
	g := New(cfg, entity.NewPlayer("Aria", gamedata.Easy, level), LoadContent(cfg))
	clock := timing.NewManualClock(epoch)
	g.clock = clock
	return g, clock
}

func step(g *Game, clock *timing.ManualClock, d time.Duration, inputs ...Input) Event {
	return g.Tick(context.Background(), clock.Advance(d), inputs)
}

// finishTyping ticks one typing delay at a time until the typewriter is idle.
func finishTyping(t *testing.T, g *Game, clock *timing.ManualClock) {
	t.Helper()
	d := g.cfg.TypingDelay
	if d <= 0 {
		d = time.Millisecond
	}
	for i := 0; i < 10000; i++ {
		step(g, clock, d)
		if !g.tw.Revealing() {
			return
		}
	}
	t.Fatal("typewriter never finished")
}

// toChoosing drives a fresh game through the welcome greeting.
func toChoosing(t *testing.T, g *Game, clock *timing.ManualClock) {
	t.Helper()
	finishTyping(t, g, clock)
	step(g, clock, WelcomeDwell)
	require.Equal(t, StateChoosing, g.State())
	finishTyping(t, g, clock)
}

func fight(g *Game, enemy *entity.Enemy) {
	g.startEncounter(context.Background(), combat.KindRegular, enemy)
	g.tw.Show([]string{"You cautiously enter the hallway and encounter " + enemy.Name + "!"})
	g.state = StateBattle
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateWelcome, "welcome"},
		{StateChoosing, "choosing"},
		{StateNarrating, "narrating"},
		{StateBattle, "battle"},
		{StateDwell, "dwell"},
		{StateBoss, "boss"},
		{StateOver, "over"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestInputDigit(t *testing.T) {
	for n := 0; n <= 9; n++ {
		d, ok := Digit(n).Digit()
		assert.True(t, ok)
		assert.Equal(t, n, d)
	}
	assert.Equal(t, InputNone, Digit(10))
	_, ok := InputAttack.Digit()
	assert.False(t, ok)
	assert.Equal(t, "3", Digit(3).String())
}

func TestWelcomeDwellThenChoices(t *testing.T) {
	g, clock := newTestGame(t, 20)

	step(g, clock, 0)
	assert.Equal(t, []string(nil), g.Frame().Log)

	finishTyping(t, g, clock)
	assert.Equal(t, StateWelcome, g.State())
	assert.Equal(t, []string{
		"Welcome, Aria!",
		"You start at level 20.",
		"Your goal is to defeat the mad king Boromour and save the kingdom!",
	}, g.tw.Visible())

	dwell := g.Session().Dwell
	require.True(t, dwell.Running())

	g.Tick(context.Background(), dwell.Start.Add(WelcomeDwell-time.Millisecond), nil)
	assert.Equal(t, StateWelcome, g.State())

	g.Tick(context.Background(), dwell.Start.Add(WelcomeDwell), nil)
	assert.Equal(t, StateChoosing, g.State())
	require.Len(t, g.Session().Choices, 3)

	lines := g.tw.Lines()
	assert.Equal(t, "On level 20 you see", lines[0])
	assert.Equal(t, "", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[1] An archway"))
	assert.Contains(t, reminders, lines[len(lines)-1])
	assert.NotNil(t, g.Player().CurrentVariant)
}

func TestChoiceDigitsIgnoredWhileTyping(t *testing.T) {
	g, clock := newTestGame(t, 20)
	finishTyping(t, g, clock)
	step(g, clock, WelcomeDwell)
	require.True(t, g.tw.Revealing())

	step(g, clock, time.Millisecond, Digit(1))
	assert.Equal(t, StateChoosing, g.State())
	assert.Len(t, g.Session().Choices, 3)
}

func TestInvalidChoice(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	before := g.Player().Status()

	step(g, clock, time.Millisecond, Digit(9))

	assert.Equal(t, StateChoosing, g.State())
	assert.Len(t, g.Session().Choices, 3)
	assert.Equal(t, before, g.Player().Status())
	lines := g.tw.Lines()
	assert.Equal(t, "Invalid choice, please enter 1, 2, or 3.", lines[len(lines)-1])
}

func TestValidChoiceLeavesJunction(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	chosen := g.Session().Choices[0]

	step(g, clock, time.Millisecond, Digit(1))

	assert.Nil(t, g.Session().Choices)
	assert.Contains(t, []State{StateBattle, StateNarrating}, g.State())
	if g.State() == StateNarrating {
		assert.Equal(t, "> You chose: "+chosen.Text, g.tw.Lines()[0])
	} else {
		assert.NotNil(t, g.Session().Combat)
		assert.Equal(t, combat.FadeIn, g.Session().Fade.State)
	}
}

func TestVictoryDwellThenChoices(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	fight(g, &entity.Enemy{Name: "a rat", Health: 1, Attack: 5})

	step(g, clock, time.Millisecond, InputAttack)
	require.Equal(t, combat.PhasePlayerActing, g.Session().Combat.Phase())

	step(g, clock, combat.RegularDurations.Attack)
	require.NotNil(t, g.Session().Combat)
	assert.Equal(t, combat.PhaseIdle, g.Session().Combat.Phase())

	step(g, clock, time.Millisecond)
	assert.Equal(t, StateDwell, g.State())
	assert.Nil(t, g.Session().Combat)
	assert.Equal(t, combat.FadeOut, g.Session().Fade.State)

	lines := g.Frame().Log
	assert.Equal(t, "You have defeated a rat!", lines[len(lines)-2])
	assert.Equal(t, "You may now continue.", lines[len(lines)-1])

	step(g, clock, CombatDwell-time.Millisecond)
	assert.Equal(t, StateDwell, g.State())
	step(g, clock, time.Millisecond)
	assert.Equal(t, StateChoosing, g.State())
}

func TestFleeNarratesThenChoices(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	g.preset.RunChance = 1
	fight(g, &entity.Enemy{Name: "a rat", Health: 50, Attack: 5})

	step(g, clock, time.Millisecond, InputFlee)
	assert.Nil(t, g.Session().Combat)
	assert.Equal(t, StateNarrating, g.State())
	assert.Contains(t, g.tw.Lines(), "You attempt to run away and succeed!")
	assert.Equal(t, typewriter.ModeCombat, g.tw.Mode(), "the escape retypes the log")
	assert.Zero(t, g.tw.Cursor())
	assert.Equal(t, combat.FadeOut, g.Session().Fade.State)

	finishTyping(t, g, clock)
	step(g, clock, time.Millisecond)
	assert.Equal(t, StateChoosing, g.State())
	assert.NotEmpty(t, g.Session().Choices)
}

func TestDefaultConfigOffersChoicesAfterNarration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	g := New(cfg, entity.NewPlayer("Aria", gamedata.Easy, 20), LoadContent(cfg))
	clock := timing.NewManualClock(epoch)
	g.clock = clock
	toChoosing(t, g, clock)

	g.Session().Choices = []world.Choice{{
		Text:   world.ActionDoor.Phrase() + " " + world.WallLeft.Phrase(),
		Action: world.ActionDoor,
		Wall:   world.WallLeft,
	}}
	step(g, clock, 16*time.Millisecond, Digit(1))
	require.Equal(t, StateNarrating, g.State())

	finishTyping(t, g, clock)
	step(g, clock, 16*time.Millisecond)

	assert.Equal(t, StateChoosing, g.State())
	assert.Len(t, g.Session().Choices, 3)
}

func TestPauseLeavesPhaseUntouched(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	fight(g, &entity.Enemy{Name: "a troll", Health: 500, Attack: 5})

	step(g, clock, time.Millisecond, InputAttack)
	c := g.Session().Combat
	timer := c.Timer()
	health := c.Enemy().Health

	ev := step(g, clock, 10*time.Second, InputPause)
	assert.Equal(t, EventPause, ev)
	assert.Equal(t, combat.PhasePlayerActing, c.Phase())
	assert.Equal(t, timer, c.Timer())
	assert.Equal(t, health, c.Enemy().Health)

	step(g, clock, time.Millisecond)
	assert.Equal(t, combat.PhaseEnemyActing, c.Phase(), "an expired phase completes on the next frame")
}

func TestCombatKeysWaitForIntro(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	enemy := &entity.Enemy{Name: "a rat", Health: 50, Attack: 5}
	fight(g, enemy)
	g.tw.Start(typewriter.ModeCombat, []string{"You cautiously enter the hallway and encounter a rat!"}, clock.Now())

	step(g, clock, time.Millisecond, InputAttack)
	assert.Equal(t, 50, enemy.Health)
	assert.Equal(t, combat.PhaseIdle, g.Session().Combat.Phase())
}

func TestBossStartsAtLevelOne(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)
	require.NotEmpty(t, g.Session().Choices)

	g.Player().Level = 1
	step(g, clock, time.Millisecond)

	assert.Equal(t, StateBoss, g.State())
	assert.Nil(t, g.Session().Choices)
	require.NotNil(t, g.Session().Combat)
	assert.Equal(t, combat.KindBoss, g.Session().Combat.Kind())
	assert.Equal(t, gamedata.BossName, g.Session().Enemy().Name)
	assert.Equal(t, []string{bossIntro}, g.Frame().Log)
	assert.Equal(t, bossInstruction, g.Frame().Instruction)
	assert.Equal(t, gamedata.BossArt, g.Frame().EnemyArt)
	assert.Equal(t, 1, g.Session().Encounters)

	step(g, clock, time.Millisecond, Digit(1))
	assert.Equal(t, StateBoss, g.State(), "digits do nothing in the boss fight")
}

func TestBossVictory(t *testing.T) {
	g, clock := newTestGame(t, 1)
	step(g, clock, 0)
	require.Equal(t, StateBoss, g.State())
	g.Session().Enemy().Health = 1

	step(g, clock, time.Millisecond, InputFlee)
	assert.Contains(t, g.tw.Lines(), "You cannot run from the Mad King!")

	step(g, clock, time.Millisecond, InputAttack)
	step(g, clock, combat.BossDurations.Attack)
	ev := step(g, clock, time.Millisecond)

	assert.Equal(t, EventVictory, ev)
	assert.Equal(t, StateOver, g.State())
	assert.Equal(t, EventVictory, step(g, clock, time.Millisecond))
}

func TestDeathEndsRun(t *testing.T) {
	g, clock := newTestGame(t, 20)
	toChoosing(t, g, clock)

	g.Player().TakeDamage(1000)
	assert.Equal(t, EventGameOver, step(g, clock, time.Millisecond))
	assert.Equal(t, StateOver, g.State())
}

func TestEmptyVariantPool(t *testing.T) {
	cfg := testConfig()
	cfg.VariationsFile = filepath.Join(t.TempDir(), "missing.json")
	content := LoadContent(cfg)
	assert.Empty(t, content.Variants)
	assert.Equal(t, 10, content.Enemies.Count())

	g := New(cfg, entity.NewPlayer("Aria", gamedata.Easy, 20), content)
	clock := timing.NewManualClock(epoch)
	g.clock = clock
	toChoosing(t, g, clock)

	assert.Empty(t, g.Session().Choices)
	assert.Nil(t, g.Player().CurrentVariant)
	assert.Equal(t, "On level 20 you see only bare stone walls.", g.tw.Lines()[0])
	assert.Equal(t, "", g.Frame().VariantArt)
}

func TestLoadContentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"left":"door","center":"door","right":"door","image":"x"}]`), 0o644))

	cfg := testConfig()
	cfg.VariationsFile = path
	content := LoadContent(cfg)
	require.Len(t, content.Variants, 1)
	assert.Equal(t, "x", content.Variants[0].Image)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ESCAPE_SEED", "42")
	t.Setenv("ESCAPE_FPS", "30")
	t.Setenv("ESCAPE_TYPING_DELAY_MS", "10")
	t.Setenv("ESCAPE_NARRATION_DWELL_MS", "250")
	t.Setenv("ESCAPE_VARIATIONS_FILE", "custom.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 10*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.NarrationDwell)
	assert.Equal(t, "custom.json", cfg.VariationsFile)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("ESCAPE_FPS", "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("ESCAPE_FPS", "")
	t.Setenv("ESCAPE_SEED", "abc")
	_, err = LoadConfig()
	assert.Error(t, err)
}

type fakeFrontend struct {
	inputs  [][]Input
	frames  int
	pauses  int
	pause   MenuAction
	victory *entity.Player
}

func (f *fakeFrontend) Draw(Frame) { f.frames++ }

func (f *fakeFrontend) Inputs() []Input {
	if len(f.inputs) == 0 {
		return nil
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in
}

func (f *fakeFrontend) Pause(context.Context) MenuAction {
	f.pauses++
	return f.pause
}

func (f *fakeFrontend) GameOver(context.Context) MenuAction { return MenuRetry }

func (f *fakeFrontend) Victory(_ context.Context, p *entity.Player) MenuAction {
	f.victory = p
	return MenuReplay
}

func TestRunPauseContinueThenQuit(t *testing.T) {
	g, _ := newTestGame(t, 20)
	fe := &fakeFrontend{
		inputs: [][]Input{{InputPause}, {InputQuit}},
		pause:  MenuContinue,
	}

	assert.Equal(t, MenuExitGame, g.Run(context.Background(), fe))
	assert.Equal(t, 1, fe.pauses)
	assert.Equal(t, 2, fe.frames)
}

func TestRunPauseToMainMenu(t *testing.T) {
	g, _ := newTestGame(t, 20)
	fe := &fakeFrontend{inputs: [][]Input{{InputPause}}, pause: MenuExitMainMenu}

	assert.Equal(t, MenuExitMainMenu, g.Run(context.Background(), fe))
}

func TestRunGameOver(t *testing.T) {
	g, _ := newTestGame(t, 20)
	g.Player().Health = 0

	assert.Equal(t, MenuRetry, g.Run(context.Background(), &fakeFrontend{}))
}

func TestRunCancelled(t *testing.T) {
	g, _ := newTestGame(t, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, MenuExitGame, g.Run(ctx, &fakeFrontend{}))
}
