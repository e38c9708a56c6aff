package content

import "testing"

func TestMergeLabels_BackfillsMissingKeys(t *testing.T) {
	merged := MergeLabels(Labels{"wheel": "دولاب"})
	if merged["wheel"] != "دولاب" {
		t.Errorf("override lost: %q", merged["wheel"])
	}
	for key, want := range DefaultLabels() {
		if key == "wheel" {
			continue
		}
		if merged[key] != want {
			t.Errorf("key %s = %q, want default %q", key, merged[key], want)
		}
	}
}

func TestMergeLabels_EmptyOverrideKeepsDefault(t *testing.T) {
	merged := MergeLabels(Labels{"mcq": ""})
	if merged["mcq"] != DefaultLabels()["mcq"] {
		t.Errorf("empty override replaced default: %q", merged["mcq"])
	}
}
