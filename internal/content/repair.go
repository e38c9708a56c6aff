package content

import "time"

// Repair reconciles a stored channel list against the built-in definitions.
// It is pure: callers persist the result themselves when changed is true.
//
// When storedVersion equals currentVersion the stored list is returned
// untouched, falling back to the builtins only if the stored list is present
// but empty (changed stays false either way, so nothing is rewritten).
//
// On a version mismatch, every built-in id is reinstated with its built-in
// visual identity (title, description, color, logo, placement) while keeping
// the stored channel's activities; channels with unknown ids pass through
// unchanged after the builtins, in their stored order. Built-ins the user
// deleted come back — that is policy, not an accident: seed channels are
// re-themed across releases and are not permanently deletable.
func Repair(stored, builtins []Channel, storedVersion, currentVersion string, now time.Time) ([]Channel, bool) {
	if storedVersion == currentVersion {
		if len(stored) == 0 {
			return builtins, false
		}
		return stored, false
	}

	byID := make(map[string]Channel, len(stored))
	for _, ch := range stored {
		byID[ch.ID] = ch
	}

	builtinIDs := make(map[string]struct{}, len(builtins))
	repaired := make([]Channel, 0, len(stored)+len(builtins))
	for _, seed := range builtins {
		builtinIDs[seed.ID] = struct{}{}
		merged := seed
		if kept, ok := byID[seed.ID]; ok {
			merged.Activities = kept.Activities
			merged.LastUpdated = now.UnixMilli()
		}
		repaired = append(repaired, merged)
	}

	for _, ch := range stored {
		if _, ok := builtinIDs[ch.ID]; !ok {
			repaired = append(repaired, ch)
		}
	}
	return repaired, true
}
