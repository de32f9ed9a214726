package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== VIEW ACTIONS =====

// ResizeAction carries the new screen size in cells.
type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type QuitAndChangeAction struct{} // x - hand the current directory to the shell
type SuspendAction struct{}       // Ctrl+Z
