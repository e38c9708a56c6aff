package content

import (
	"encoding/json"
	"errors"
	"time"
)

// Document is the export/import unit: the whole channel collection plus
// labels and the schema version that produced them.
type Document struct {
	Channels []Channel `json:"channels"`
	Labels   Labels    `json:"labels"`
	Version  string    `json:"version"`
}

// ErrInvalidBackup is returned when imported bytes are neither a backup
// document nor a bare channel array.
var ErrInvalidBackup = errors.New("backup data is not a document or channel list")

// ParseBackup decodes an exported document or a bare channel array.
// Channels are sanitized (missing logo placement and activities defaulted,
// fresh lastUpdated). For a bare array the returned labels are nil, meaning
// the caller should keep its current labels.
func ParseBackup(data []byte, now time.Time) ([]Channel, Labels, error) {
	var channels []Channel
	// The literal null also decodes into a nil slice without error; only a
	// real array counts as the bare-array form.
	if err := json.Unmarshal(data, &channels); err == nil && channels != nil {
		return sanitizeChannels(channels, now), nil, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Channels == nil {
		return nil, nil, ErrInvalidBackup
	}
	return sanitizeChannels(doc.Channels, now), doc.Labels, nil
}

func sanitizeChannels(channels []Channel, now time.Time) []Channel {
	out := make([]Channel, len(channels))
	for i, ch := range channels {
		out[i] = SanitizeChannel(ch, now)
	}
	return out
}

// SanitizeChannel fills the fields an imported record may be missing:
// zero logo scale becomes the default placement, nil activities become an
// empty list, and lastUpdated is restamped.
func SanitizeChannel(ch Channel, now time.Time) Channel {
	if ch.LogoConfig.Scale == 0 {
		ch.LogoConfig.Scale = DefaultLogoConfig().Scale
	}
	if ch.Activities == nil {
		ch.Activities = []Activity{}
	}
	ch.LastUpdated = now.UnixMilli()
	return ch
}
