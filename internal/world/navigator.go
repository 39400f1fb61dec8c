package world

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/gamedata"
	"github.com/samdwyer/escapecastle/internal/logger"
	"github.com/samdwyer/escapecastle/internal/telemetry"
)

// Choice is one passage offered at a junction.
type Choice struct {
	Text   string
	Action Action
	Wall   Wall
}

type junction struct {
	variant gamedata.Variant
	actions [3]Action
}

// Navigator builds the passages the player sees at each junction.
type Navigator struct {
	junctions []junction
	rng       dice.Rand
}

// NewNavigator creates a navigator over the given variants. Variants with an
// unknown action tag are dropped with a warning.
func NewNavigator(variants []gamedata.Variant, rng dice.Rand) *Navigator {
	n := &Navigator{rng: rng}
	for i, v := range variants {
		j := junction{variant: v}
		ok := true
		for slot, tag := range [3]string{v.Left, v.Center, v.Right} {
			a, err := ParseAction(tag)
			if err != nil {
				logger.Log.WithFields(logrus.Fields{
					"variant": i,
					"image":   v.Image,
				}).WithError(err).Warn("dropping junction variant")
				ok = false
				break
			}
			j.actions[slot] = a
		}
		if ok {
			n.junctions = append(n.junctions, j)
		}
	}
	return n
}

// Len returns the number of usable variants.
func (n *Navigator) Len() int {
	return len(n.junctions)
}

// GenerateChoices draws a junction uniformly at random and returns its
// passages in left, center, right order. Stairs up are hidden on level 1.
// The drawn variant becomes the player's current variant; with no variants
// loaded the result is empty and the current variant is cleared.
func (n *Navigator) GenerateChoices(ctx context.Context, p *entity.Player) []Choice {
	_, span := telemetry.Tracer("world").Start(ctx, "world.junction")
	defer span.End()

	if len(n.junctions) == 0 {
		p.CurrentVariant = nil
		span.SetAttributes(attribute.Int("junction.choices", 0))
		return nil
	}

	j := n.junctions[n.rng.Intn(len(n.junctions))]
	v := j.variant
	p.CurrentVariant = &v

	choices := make([]Choice, 0, len(j.actions))
	for slot, a := range j.actions {
		if a == ActionStairsUp && p.Level == 1 {
			continue
		}
		w := Wall(slot)
		choices = append(choices, Choice{
			Text:   a.Phrase() + " " + w.Phrase(),
			Action: a,
			Wall:   w,
		})
	}

	span.SetAttributes(
		attribute.Int("player.level", p.Level),
		attribute.String("junction.image", v.Image),
		attribute.Int("junction.choices", len(choices)),
	)
	return choices
}
