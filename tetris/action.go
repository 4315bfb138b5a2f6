package tetris

// Action is a player input understood by Game.Apply.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveDown
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionHold
	ActionSoftDropOn
	ActionSoftDropOff

	actionCount
)

var actionNames = [actionCount]string{
	"move-left",
	"move-right",
	"move-down",
	"rotate-cw",
	"rotate-ccw",
	"hard-drop",
	"hold",
	"soft-drop-on",
	"soft-drop-off",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Actions lists every action.
func Actions() []Action {
	actions := make([]Action, actionCount)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// ParseAction maps a name produced by Action.String back to the action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}
