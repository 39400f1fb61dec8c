package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/gamedata"
)

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionStairsDown, ActionStairsUp, ActionDoor, ActionHall} {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("trapdoor")
	assert.Error(t, err)
}

func TestGenerateChoicesOrderAndText(t *testing.T) {
	variants := []gamedata.Variant{{Left: "door", Center: "hall", Right: "stairs_down", Image: "variation1"}}
	nav := NewNavigator(variants, rand.New(rand.NewSource(1)))
	p := entity.NewPlayer("Aria", gamedata.Easy, 20)

	choices := nav.GenerateChoices(context.Background(), p)
	require.Len(t, choices, 3)

	assert.Equal(t, "An archway with a door on the left wall", choices[0].Text)
	assert.Equal(t, "An archway with a hallway on the wall facing you", choices[1].Text)
	assert.Equal(t, "An archway with a set of stairs going down to the previous level to the right wall", choices[2].Text)
	assert.Equal(t, []Action{ActionDoor, ActionHall, ActionStairsDown},
		[]Action{choices[0].Action, choices[1].Action, choices[2].Action})

	require.NotNil(t, p.CurrentVariant)
	assert.Equal(t, "variation1", p.CurrentVariant.Image)
}

func TestGenerateChoicesNoStairsUpOnLevelOne(t *testing.T) {
	variants, err := gamedata.LoadVariants()
	require.NoError(t, err)
	nav := NewNavigator(variants, rand.New(rand.NewSource(7)))

	top := entity.NewPlayer("Aria", gamedata.Easy, 1)
	deeper := entity.NewPlayer("Aria", gamedata.Easy, 2)
	sawStairsUp := false

	for i := 0; i < 500; i++ {
		for _, c := range nav.GenerateChoices(context.Background(), top) {
			assert.NotEqual(t, ActionStairsUp, c.Action)
		}
		for _, c := range nav.GenerateChoices(context.Background(), deeper) {
			if c.Action == ActionStairsUp {
				sawStairsUp = true
			}
		}
	}
	assert.True(t, sawStairsUp, "stairs up should appear below level 1")
}

func TestGenerateChoicesFilterKeepsWalls(t *testing.T) {
	variants := []gamedata.Variant{{Left: "stairs_up", Center: "door", Right: "hall"}}
	nav := NewNavigator(variants, &dice.Script{})
	p := entity.NewPlayer("Aria", gamedata.Easy, 1)

	choices := nav.GenerateChoices(context.Background(), p)
	require.Len(t, choices, 2)
	assert.Equal(t, WallCenter, choices[0].Wall)
	assert.Equal(t, WallRight, choices[1].Wall)
}

func TestGenerateChoicesEmptyPool(t *testing.T) {
	nav := NewNavigator(nil, &dice.Script{})
	p := entity.NewPlayer("Aria", gamedata.Easy, 20)
	p.CurrentVariant = &gamedata.Variant{Image: "stale"}

	assert.Empty(t, nav.GenerateChoices(context.Background(), p))
	assert.Nil(t, p.CurrentVariant)
}

func TestNewNavigatorDropsMalformed(t *testing.T) {
	nav := NewNavigator([]gamedata.Variant{
		{Left: "door", Center: "hall", Right: "stairs_up"},
		{Left: "door", Center: "portal", Right: "hall"},
	}, &dice.Script{})
	assert.Equal(t, 1, nav.Len())
}

func newResolver(t *testing.T, rng dice.Rand) *Resolver {
	t.Helper()
	registry, err := gamedata.LoadEnemyRegistry()
	require.NoError(t, err)
	return NewResolver(registry, rng)
}

func TestResolveDoorScroll(t *testing.T) {
	r := newResolver(t, &dice.Script{Floats: []float64{0.85}})
	p := entity.NewPlayer("Aria", gamedata.Easy, 20)
	p.TakeDamage(30)

	out := r.Resolve(p, Choice{Action: ActionDoor})

	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, 2, p.Spells)
	assert.Equal(t, 70, p.Health, "a scroll leaves health alone")
	assert.Equal(t, []string{
		"You open the door and find a dusty treasure chest!",
		"You found a scroll with a new spell!",
	}, out.Lines)
}

func TestResolveDoorPotion(t *testing.T) {
	r := newResolver(t, &dice.Script{Floats: []float64{0.1}, Ints: []int{5}})
	p := entity.NewPlayer("Aria", gamedata.Easy, 20)

	out := r.Resolve(p, Choice{Action: ActionDoor})

	assert.Equal(t, 115, p.Health)
	assert.Equal(t, 115, p.MaxHealth)
	assert.Equal(t, 1, p.Spells)
	assert.Equal(t, "You found a potion and healed for 15 health!", out.Lines[1])
}

func TestResolveDoorPotionWithinRange(t *testing.T) {
	r := newResolver(t, rand.New(rand.NewSource(3)))
	for i := 0; i < 200; i++ {
		p := entity.NewPlayer("Aria", gamedata.Easy, 20)
		r.Resolve(p, Choice{Action: ActionDoor})
		gained := p.Health - 100
		if gained > 0 {
			assert.GreaterOrEqual(t, gained, HealMin)
			assert.LessOrEqual(t, gained, HealMax)
		}
	}
}

func TestResolveStairs(t *testing.T) {
	r := newResolver(t, &dice.Script{})
	p := entity.NewPlayer("Aria", gamedata.Easy, 20)

	out := r.Resolve(p, Choice{Action: ActionStairsUp})
	assert.Equal(t, 19, p.Level)
	assert.Equal(t, []string{"You climb the stairs. You are now on level 19."}, out.Lines)

	out = r.Resolve(p, Choice{Action: ActionStairsDown})
	assert.Equal(t, 20, p.Level)
	assert.Equal(t, []string{"You descend the stairs. You are now on level 20."}, out.Lines)
}

func TestResolveHallSpawnsScaledEnemy(t *testing.T) {
	r := newResolver(t, &dice.Script{Ints: []int{0}})
	p := entity.NewPlayer("Aria", gamedata.Hard, 100)

	out := r.Resolve(p, Choice{Action: ActionHall})

	require.Equal(t, OutcomeBattle, out.Kind)
	require.NotNil(t, out.Enemy)
	assert.Equal(t, out.Enemy.Def.HP*2, out.Enemy.Health)
	assert.Equal(t, []string{"You cautiously enter the hallway and encounter " + out.Enemy.Name + "!"}, out.Lines)
	assert.Equal(t, 100, p.Health)
}
