package models

import "fmt"

// SelectionMode is the policy used to decide which orders get printed
type SelectionMode string

const (
	// ModeFulfillment keeps orders that are still awaiting fulfillment
	ModeFulfillment SelectionMode = "fulfillment"
	// ModeDateWindow keeps unposted orders sold before today (or including today)
	ModeDateWindow SelectionMode = "date-window"
)

// SelectOptions configures order selection
// IncludeToday only applies to ModeDateWindow
type SelectOptions struct {
	Mode         SelectionMode `json:"mode"`
	IncludeToday bool          `json:"includeToday"`
}

// ParseSelectionMode validates a mode name coming from flags or environment
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch SelectionMode(s) {
	case ModeFulfillment, "":
		return ModeFulfillment, nil
	case ModeDateWindow:
		return ModeDateWindow, nil
	default:
		return "", fmt.Errorf("invalid selection mode %q (must be %s or %s)", s, ModeFulfillment, ModeDateWindow)
	}
}
