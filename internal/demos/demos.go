// Package demos registers the built-in cartridges. They double as smoke
// tests for the rule engine: each one exercises a different group of
// questions and demands.
package demos

import (
	"strconv"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/registry"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func init() {
	registry.Register("bounce", "Bouncing Ball", Bounce)
	registry.Register("clicker", "Clicker", Clicker)
	registry.Register("switch", "Switch Toggle", Toggle)
}

// ClicksToWin is how many clicks win the clicker demo.
const ClicksToWin = 10

func chore(questions []rules.Question, demands ...rules.Demand) rules.SavedChore {
	if questions == nil {
		questions = []rules.Question{}
	}
	return rules.SavedChore{Questions: questions, Demands: demands}
}

func atStart(demands ...rules.Demand) rules.SavedChore {
	return chore([]rules.Question{rules.IsTimeAt{When: rules.Start}}, demands...)
}

func member(name string, p core.Position, sprite rules.Sprite, text string, todo ...rules.SavedChore) cartridge.Member {
	if todo == nil {
		todo = []rules.SavedChore{}
	}
	return cartridge.Member{
		Name:     name,
		Position: p,
		Sprite:   sprite,
		Text:     rules.PlainText(text),
		TodoList: todo,
	}
}

func square(index uint32) rules.Sprite {
	return rules.Sprite{Index: index, Size: rules.SquareSize(16)}
}

// Bounce is a ball roaming the whole screen, bouncing off the edges.
func Bounce() cartridge.Cartridge {
	c := cartridge.New(rules.Small, encodedSheet(), "")
	c.IntroText = cartridge.SameIntro("Watch it go")
	c.Length = rules.Infinite
	screen := core.TLWH(0, 0, rules.InnerWidth, rules.InnerHeight)
	c.Members = append(c.Members,
		member("Ball", core.Pos(40, 30), square(BallSprite), "",
			atStart(rules.MotionDemand{Motion: rules.Roam{
				RoamType: rules.Bounce,
				Area:     screen,
				Speed:    anim.SpeedFast,
			}}),
		),
	)
	return c
}

// Clicker counts clicks on a button and is won after ClicksToWin of them.
func Clicker() cartridge.Cartridge {
	c := cartridge.New(rules.Small, encodedSheet(), "")
	c.IntroText = cartridge.SameIntro("Click!")
	c.Length = rules.Infinite
	pressed := rules.IsMouseInteracting{Which: rules.LeftButton, State: rules.StatePress, Hover: rules.This}
	c.Members = append(c.Members,
		member("Button", core.Pos(128, 80), square(ButtonSprite), "",
			atStart(rules.SetVariable{Name: "Clicks", Value: "0"}),
			chore([]rules.Question{pressed},
				rules.Add1ToVariable{Name: "Clicks"},
				rules.PlaySound{Name: "click"},
			),
			chore([]rules.Question{rules.IsVariableSetTo{Name: "Clicks", Value: strconv.Itoa(ClicksToWin)}},
				rules.Win,
			),
		),
		member("Counter", core.Pos(128, 40), rules.NoSprite(), "0",
			chore(nil, rules.SetTextFromVariable{Name: "Clicks"}),
		),
	)
	return c
}

// Toggle is a lamp switched on by a left click and off by a right click. Its
// label follows the switch.
func Toggle() cartridge.Cartridge {
	c := cartridge.New(rules.Small, encodedSheet(), "")
	c.IntroText = cartridge.SameIntro("Lights")
	c.Length = rules.Infinite
	click := func(b rules.WhichButton) rules.Question {
		return rules.IsMouseInteracting{Which: b, State: rules.StatePress, Hover: rules.This}
	}
	c.Members = append(c.Members,
		member("Lamp", core.Pos(128, 72), square(LampSprite), "",
			chore([]rules.Question{click(rules.LeftButton)}, rules.SetSwitch{Switch: rules.On}),
			chore([]rules.Question{click(rules.RightButton)}, rules.SetSwitch{Switch: rules.Off}),
		),
		member("Label", core.Pos(128, 110), rules.NoSprite(), "Off",
			chore([]rules.Question{rules.IsSwitchSetTo{Name: "Lamp", Switch: rules.SwitchedOn}},
				rules.SetText{Text: rules.PlainText("On")},
			),
			chore([]rules.Question{rules.IsSwitchSetTo{Name: "Lamp", Switch: rules.SwitchedOff}},
				rules.SetText{Text: rules.PlainText("Off")},
			),
		),
	)
	return c
}
