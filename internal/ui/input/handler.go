package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/efm/internal/state"
)

// InputHandler converts tcell key events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit. Resize events are not handled here; the event loop
// coalesces them itself.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	action := ActionForKey(key)
	if action == nil {
		return true
	}
	ih.actionChan <- action
	switch action.(type) {
	case statepkg.QuitAction, statepkg.QuitAndChangeAction:
		return false
	}
	return true
}

// ActionForKey maps a key press to its action, or nil for unbound keys.
func ActionForKey(ev *tcell.EventKey) statepkg.Action {
	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}
	case tcell.KeyCtrlZ:
		return statepkg.SuspendAction{}
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}
	case tcell.KeyHome:
		return statepkg.JumpTopAction{}
	case tcell.KeyEnd:
		return statepkg.JumpBottomAction{}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.GoUpAction{}
	case tcell.KeyRight, tcell.KeyEnter:
		return statepkg.EnterDirectoryAction{}
	case tcell.KeyRune:
	default:
		return nil
	}

	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return nil
	}

	switch ev.Rune() {
	case 'j':
		return statepkg.NavigateDownAction{}
	case 'k':
		return statepkg.NavigateUpAction{}
	case 'g':
		return statepkg.JumpTopAction{}
	case 'G':
		return statepkg.JumpBottomAction{}
	case 'h':
		return statepkg.GoUpAction{}
	case 'l':
		return statepkg.EnterDirectoryAction{}
	case 'q':
		return statepkg.QuitAction{}
	case 'x':
		return statepkg.QuitAndChangeAction{}
	}
	return nil
}
