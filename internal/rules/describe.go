package rules

import (
	"fmt"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
)

// timeDivisions is the number of Exact time steps shown per beat.
const timeDivisions = 12

func shorten(s string, limit int) string {
	limit = core.Min(core.Max(limit, 3), len(s))
	if limit < len(s) {
		return s[:limit] + "..."
	}
	return s
}

func timeLabel(t int) string {
	return fmt.Sprintf("%d-%d", t/timeDivisions+1, t%timeDivisions+1)
}

func pointLabel(p core.Position) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func areaLabel(r core.Rect) string {
	return fmt.Sprintf("(%d, %d) to (%d, %d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// DescribeQuestion returns the editor sentence for q, without punctuation.
func DescribeQuestion(q Question) string {
	switch v := questionOrNone(q).(type) {
	case Query:
		switch v {
		case IsAnimationFinished:
			return "Has animation finished"
		case IsSubgamePlaying:
			return "Is subgame playing"
		case IsSubgameEnding:
			return "Is subgame ending"
		case IsOnDesktop:
			return "Is on desktop"
		case IsOnWeb:
			return "Is on web"
		default:
			return "None"
		}
	case IsTimeAt:
		switch w := v.When.(type) {
		case Exact:
			return "Is the time " + timeLabel(w.Time)
		case Random:
			return "Is randomly in " + timeLabel(w.Start) + " to " + timeLabel(w.End)
		case Moment:
			if w == End {
				return "Is the game ending"
			}
		}
		return "Has the game just started"
	case IsMouseInteracting:
		return describeMouse(v)
	case IsWinStatusSetTo:
		switch v.Status {
		case Won:
			return "Has the game been won"
		case Lost:
			return "Has the game been lost"
		case JustWon:
			return "Has the game just been won"
		case JustLost:
			return "Has the game just been lost"
		case NotYetWon:
			return "Has the game not been won yet"
		default:
			return "Has the game not been lost yet"
		}
	case IsSpriteSetTo:
		return "Is this sprite set to " + v.Sprite.String()
	case IsVariableSetTo:
		return "Is " + v.Name + " set to " + v.Value
	case IsTextSetTo:
		return "Is text set to " + v.Value
	case IsSwitchSetTo:
		switch v.Switch {
		case On:
			return "Is " + shorten(v.Name, 12) + "'s switch On"
		case Off:
			return "Is " + shorten(v.Name, 11) + "'s switch Off"
		case SwitchedOn:
			return "Is " + shorten(v.Name, 11) + " switched on"
		default:
			return "Is " + shorten(v.Name, 11) + " switched off"
		}
	case IsCollidingWith:
		if m, ok := v.With.(WithMember); ok {
			return "Has touched " + shorten(m.Name, 12)
		}
		if a, ok := v.With.(WithArea); ok {
			return "Has touched " + areaLabel(a.Area)
		}
		return "Has touched " + areaLabel(core.Rect{})
	case IsPagedVariableValid:
		return fmt.Sprintf("Is %s %s valid", v.Name, v.Value)
	case IsPagedVariableSelected:
		return fmt.Sprintf("Is %s %s selected", v.Name, v.Value)
	case IsAnimationSpriteValid:
		return fmt.Sprintf("Is animation %d valid", v.Index)
	case IsShortcutUsed:
		return "Is " + v.Shortcut.String() + " shortcut used"
	}
	return "None"
}

func describeMouse(q IsMouseInteracting) string {
	if q.Which != LeftButton {
		return "Is other mouse interaction"
	}
	switch q.Hover {
	case This:
		return [...]string{
			AnyState:     "Is this hovered",
			StateUp:      "Is this left up",
			StatePress:   "Has this been clicked",
			StateDown:    "Is this held down",
			StateRelease: "Has this been released",
		}[q.State]
	case TopMember:
		return [...]string{
			AnyState:     "Is this top and hovered",
			StateUp:      "Is this top and left up",
			StatePress:   "Is this top and clicked",
			StateDown:    "Is this top and held down",
			StateRelease: "Is this top and released",
		}[q.State]
	default:
		return [...]string{
			AnyState:     "Is the mouse anywhere",
			StateUp:      "Is the screen not clicked",
			StatePress:   "Is the screen clicked",
			StateDown:    "Is the screen held down",
			StateRelease: "Is the mouse released",
		}[q.State]
	}
}

var commandText = map[Command]string{
	NoDemand:                  "None",
	Win:                       "Win this game",
	Lose:                      "Lose this game",
	StopAnimation:             "Stop animating",
	StopMusic:                 "Stop the music",
	StopSounds:                "Stop all sounds",
	SetAnimationSprite:        "Set the animation sprite",
	AddAnimationSprite:        "Add an animation sprite",
	RemoveAnimationSprite:     "Remove an animation sprite",
	MoveAnimationUp:           "Move animation sprite up",
	MoveAnimationDown:         "Move animation sprite down",
	New:                       "Make a new game",
	Load:                      "Load a game",
	Save:                      "Save the game",
	EditText:                  "Make this text editable",
	PreviewMusic:              "Preview the music",
	PreviousPage:              "Go to previous page",
	NextPage:                  "Go to next page",
	SetImageFile:              "Set the game image",
	SetMusicFile:              "Set the game music",
	UpdateScratchFromMember:   "Set variables from member values",
	UpdateScratchFromQuestion: "Set variables from question values",
	UpdateScratchFromDemand:   "Set variables from demand values",
	SwitchMember:              "Switch member",
	AddMember:                 "Add a member",
	RemoveMember:              "Remove the member",
	CloneMember:               "Clone the member",
	RenameMember:              "Rename the member",
	RemoveChore:               "Remove the chore",
	MoveChoreUp:               "Move the chore up",
	MoveChoreDown:             "Move the chore down",
	MoveQuestionUp:            "Move the question up",
	MoveQuestionDown:          "Move the question down",
	MoveDemandUp:              "Move the demand up",
	MoveDemandDown:            "Move the demand down",
	UpdateQuestion:            "Update the question",
	UpdateDemand:              "Update the demand",
	SetStartSprite:            "Set the starting sprite",
	Quit:                      "Quit the game",
	Stop:                      "Stop the game",
	Play:                      "Play the game",
	Pause:                     "Pause the game",
	FadeOut:                   "Fade out",
	BackInQueue:               "Go to previous game in queue",
	NextInQueue:               "Go to next game in queue",
	ResetQueue:                "Reset the queue",
	ClearArt:                  "Clear Art",
	SaveArt:                   "Save Art",
	PlayPhrase:                "Play Maker Phrase",
	PausePhrase:               "Pause Maker Phrase",
	StopPhrase:                "Stop Maker Phrase",
	PreviousInstrument:        "Use Previous Instrument",
	NextInstrument:            "Use Next Instrument",
	PreviousTrack:             "Go To Previous Track",
	NextTrack:                 "Go To Next Track",
}

// DescribeDemand returns the editor sentence for d, without punctuation.
func DescribeDemand(d Demand) string {
	if d == nil {
		return "None"
	}
	switch v := d.(type) {
	case Command:
		if s, ok := commandText[v]; ok {
			return s
		}
		return v.String()
	case SetSprite:
		return "Set this sprite to " + v.Sprite.String()
	case SetSwitch:
		if v.Switch == On || v.Switch == SwitchedOn {
			return "Set this switch on"
		}
		return "Set this switch off"
	case SetText:
		return "Set text to " + v.Text.Contents
	case Animate:
		if v.Style == anim.StylePlayOnce {
			return "Play an animation once"
		}
		return "Loop an animation"
	case PlaySound:
		return "Play " + v.Name + " sound"
	case MotionDemand:
		return describeMotion(v.Motion)
	case SetVariable:
		return "Set " + v.Name + " to " + v.Value
	case SetVariableFromText:
		return "Set " + v.Name
	case SetTextFromVariable:
		return "Set text from " + v.Name
	case SetTextFromPosition:
		return "Set text from " + v.Axis.String() + " position"
	case SelectPagedVariable:
		return "Select " + v.Name + " " + v.Value
	case Add1ToVariable:
		return "Plus 1 to " + v.Name
	case Sub1FromVariable:
		return "Minus 1 from " + v.Name
	case MoveToGame:
		return "Switch to " + v.Name + " game"
	case FadeToGame:
		return "Fade to " + v.Name + " game"
	case AddToQueue:
		return "Add " + v.Name + " to queue"
	}
	return VariantName(d)
}

func describeMotion(m Motion) string {
	switch v := m.(type) {
	case Go:
		dirs := v.Direction.List()
		if len(dirs) == 1 {
			return "Go " + dirs[0].String() + " " + v.Speed.Name()
		}
		return "Go " + v.Speed.Name() + " in a random direction"
	case GoToPoint:
		return "Go to " + pointLabel(v.Point) + " " + v.Speed.Name()
	case JumpTo:
		switch loc := v.Location.(type) {
		case ToPoint:
			return "Jump to " + pointLabel(loc.Point)
		case ToArea:
			return "Jump to within " + areaLabel(loc.Area)
		case ToMember:
			return "Jump to " + shorten(loc.Name, 16)
		case Relative:
			return "Jump relative"
		}
		return "Jump to the mouse"
	case Swap:
		return "Swap places with " + shorten(v.Name, 10)
	case Roam:
		return v.RoamType.String() + " in " + areaLabel(v.Area)
	case ClampPosition:
		return "Clamp in " + areaLabel(v.Area)
	case Target:
		return "Target " + shorten(v.Name, 16)
	case AttachFromPositions:
		return "Attach to " + shorten(v.Name, 14)
	}
	return "Stop moving"
}
