package game

import (
	"fmt"

	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/world"
)

const (
	battleInstruction = "Press 'A' to attack, 'S' to use a spell, or 'R' to run."
	bossInstruction   = "Press 'A' to attack or 'S' to cast a spell! (No running this time!)"
	choiceInstruction = "Press 1-3 to choose. Press 'ESC' for menu."

	invalidChoice = "Invalid choice, please enter 1, 2, or 3."
	bossIntro     = "You encounter the Mad King Baramour! Prepare for the ultimate battle!"
)

var reminders = []string{
	"Make your next choice...",
	"⚔️ Choose your path wisely...",
	"➡️ Which way will you go?",
	"🔮 Destiny awaits — what will you decide?",
	"🚪 Step forward, adventurer...",
	"👀 The castle watches — choose carefully...",
	"🕯️ Another path lies ahead...",
}

func welcomeLines(p *entity.Player) []string {
	return []string{
		fmt.Sprintf("Welcome, %s!", p.Name),
		fmt.Sprintf("You start at level %d.", p.Level),
		"Your goal is to defeat the mad king Boromour and save the kingdom!",
	}
}

func choiceLines(r dice.Rand, level int, choices []world.Choice) []string {
	reminder := reminders[r.Intn(len(reminders))]
	if len(choices) == 0 {
		return []string{
			fmt.Sprintf("On level %d you see only bare stone walls.", level),
			"",
			reminder,
		}
	}
	lines := []string{fmt.Sprintf("On level %d you see", level), ""}
	for i, c := range choices {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, c.Text))
	}
	return append(lines, "", reminder)
}

func chosenLine(c world.Choice) string {
	return "> You chose: " + c.Text
}
