package content

// Labels maps fixed UI-text keys (section headers and per-type display
// names) to display strings.
type Labels map[string]string

// DefaultLabels returns the shipped label set. Keys added in newer releases
// are backfilled into persisted overrides by MergeLabels.
func DefaultLabels() Labels {
	return Labels{
		"interactiveSection":  "أنشطة تفاعلية",
		"gamificationSection": "أنشطة تلعيبية",
		"mcq":                 "اختيار من متعدد",
		"truefalse":           "صح وخطأ",
		"matching":            "مطابقة",
		"flashcard":           "بطاقات تعليمية",
		"wheel":               "عجلة الحظ",
		"puzzle":              "البزل",
		"memory":              "الذاكرة",
		"riddle":              "الألغاز",
		"blast":               "انطلق",
	}
}

// MergeLabels lays overrides on top of the defaults, so a stored set from an
// older release still carries every current key.
func MergeLabels(overrides Labels) Labels {
	merged := DefaultLabels()
	for key, value := range overrides {
		if value != "" {
			merged[key] = value
		}
	}
	return merged
}
