package content

import (
	"testing"
	"time"
)

func builtinIDs(channels []Channel) map[string]bool {
	ids := make(map[string]bool, len(channels))
	for _, ch := range channels {
		ids[ch.ID] = true
	}
	return ids
}

func TestRepair_VersionMatchKeepsStoredUntouched(t *testing.T) {
	now := time.Now()
	stored := []Channel{{ID: "custom", Title: "mine", Activities: []Activity{}}}

	got, changed := Repair(stored, BuiltinChannels(now), DataVersion, DataVersion, now)
	if changed {
		t.Fatal("version match must not report a change")
	}
	if len(got) != 1 || got[0].ID != "custom" || got[0].Title != "mine" {
		t.Fatalf("stored list was rewritten: %+v", got)
	}
}

func TestRepair_VersionMatchEmptyStoredFallsBackToBuiltins(t *testing.T) {
	now := time.Now()
	builtins := BuiltinChannels(now)

	got, changed := Repair([]Channel{}, builtins, DataVersion, DataVersion, now)
	if changed {
		t.Fatal("fallback must not report a change")
	}
	if len(got) != len(builtins) {
		t.Fatalf("got %d channels, want the %d builtins", len(got), len(builtins))
	}
}

func TestRepair_MismatchRestoresIdentityAndKeepsActivities(t *testing.T) {
	now := time.Now()
	builtins := BuiltinChannels(now)
	seed := builtins[0]

	custom := Activity{ID: "act-x", Type: TypeMCQ, Title: "my quiz"}
	stored := []Channel{
		{
			ID:          seed.ID,
			Title:       "renamed by user",
			Color:       "#000000",
			Activities:  []Activity{custom},
			LastUpdated: 1,
		},
		{ID: "user-made", Title: "custom channel", Activities: []Activity{}},
	}

	got, changed := Repair(stored, builtins, "2.0", DataVersion, now)
	if !changed {
		t.Fatal("version mismatch must report a change")
	}

	// Built-ins come first, in seed order, wearing their seed identity.
	if len(got) != len(builtins)+1 {
		t.Fatalf("got %d channels, want %d", len(got), len(builtins)+1)
	}
	repaired := got[0]
	if repaired.ID != seed.ID || repaired.Title != seed.Title || repaired.Color != seed.Color {
		t.Errorf("seed identity not restored: %+v", repaired)
	}
	if len(repaired.Activities) != 1 || repaired.Activities[0].ID != "act-x" {
		t.Errorf("stored activities lost: %+v", repaired.Activities)
	}
	if repaired.LastUpdated != now.UnixMilli() {
		t.Errorf("merged channel not restamped: %d", repaired.LastUpdated)
	}

	// The unknown channel survives, after the builtins.
	last := got[len(got)-1]
	if last.ID != "user-made" || last.Title != "custom channel" {
		t.Errorf("custom channel lost or reordered: %+v", last)
	}
}

func TestRepair_MismatchReinstatesDeletedBuiltins(t *testing.T) {
	now := time.Now()
	builtins := BuiltinChannels(now)

	// The user deleted every seed channel; a version bump brings them back.
	got, changed := Repair([]Channel{{ID: "only-mine"}}, builtins, "2.0", DataVersion, now)
	if !changed {
		t.Fatal("expected a change")
	}
	ids := builtinIDs(got)
	for _, seed := range builtins {
		if !ids[seed.ID] {
			t.Errorf("builtin %s not reinstated", seed.ID)
		}
	}
}

func TestRepair_Idempotent(t *testing.T) {
	now := time.Now()
	builtins := BuiltinChannels(now)
	stored := []Channel{{ID: builtins[2].ID, Activities: []Activity{{ID: "a"}}}}

	first, changed := Repair(stored, builtins, "1.0", DataVersion, now)
	if !changed {
		t.Fatal("first pass should change")
	}
	second, changed := Repair(first, builtins, DataVersion, DataVersion, now)
	if changed {
		t.Fatal("second pass should be a no-op")
	}
	if len(second) != len(first) {
		t.Fatalf("second pass resized the collection: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if second[i].ID != first[i].ID {
			t.Fatalf("second pass reordered the collection at %d", i)
		}
	}
}
