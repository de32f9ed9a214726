package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/efm/internal/state"
)

// buildFooterHelpText returns the key hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments lists the hints that apply to the current listing.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := []string{}
	if state.EntryCount() > 0 {
		segments = append(segments, "j/k: move", "g/G: top/bottom")
	}
	segments = append(segments, "h: up")
	if entry := state.CurrentEntry(); entry != nil && entry.IsDir {
		segments = append(segments, "l: open")
	}
	return append(segments, "q: quit")
}
