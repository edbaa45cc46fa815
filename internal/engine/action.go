package engine

import "fmt"

// ActionKind is a request a rule makes of the host.
type ActionKind int

const (
	ActionNew ActionKind = iota
	ActionLoad
	ActionSave
	ActionSetImageFile
	ActionSetMusicFile
	ActionPreviewMusic
	ActionStopMusic
	ActionQuit
	ActionPlay
	ActionPause
	ActionStop
	ActionMoveToGame
	ActionFadeToGame
	ActionFadeOut
	ActionBackInQueue
	ActionNextInQueue
	ActionAddToQueue
	ActionResetQueue
)

var actionNames = []string{
	"New", "Load", "Save", "SetImageFile", "SetMusicFile", "PreviewMusic", "StopMusic",
	"Quit", "Play", "Pause", "Stop", "MoveToGame", "FadeToGame", "FadeOut",
	"BackInQueue", "NextInQueue", "AddToQueue", "ResetQueue",
}

func (k ActionKind) String() string {
	if int(k) < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// Action is a menu action. Name is the game for MoveToGame, FadeToGame and
// AddToQueue.
type Action struct {
	Kind ActionKind
	Name string
}

func (a Action) String() string {
	if a.Name != "" {
		return fmt.Sprintf("%s %s", a.Kind, a.Name)
	}
	return a.Kind.String()
}

func act(k ActionKind) Action { return Action{Kind: k} }
