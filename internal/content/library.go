package content

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lab4/internal/store"
)

// Lookup and validation errors surfaced by Library operations.
var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrUnknownType      = errors.New("unknown activity type")
	ErrEmptyQuestion    = errors.New("question needs text or an image")
)

// Library owns the channel collection and labels for the running process.
// It loads (and repairs) the persisted document once at startup and writes
// back after every mutation. Storage write failures are logged and ignored:
// the in-memory state stays authoritative for the rest of the session.
type Library struct {
	mu        sync.Mutex
	st        store.Store
	now       func() time.Time
	channels  []Channel
	labels    Labels
	lastStamp int64
}

// OpenLibrary loads the persisted document from st, running the repair
// routine when the stored schema version differs from the current one.
// Malformed or missing data degrades to defaults; nothing here is fatal.
func OpenLibrary(st store.Store) *Library {
	l := &Library{st: st, now: time.Now}

	var overrides Labels
	l.loadJSON(store.KeyLabels, &overrides)
	l.labels = MergeLabels(overrides)

	var stored []Channel
	l.loadJSON(store.KeyChannels, &stored)
	storedVersion := ""
	if raw, ok, err := st.Get(store.KeyVersion); err == nil && ok {
		storedVersion = string(raw)
	}

	now := l.now()
	repaired, changed := Repair(stored, BuiltinChannels(now), storedVersion, DataVersion, now)
	l.channels = repaired
	if changed {
		log.Printf("migrated stored data to version %s (%d channels)", DataVersion, len(repaired))
		l.persistChannels()
		l.persistVersion()
	}
	return l
}

// loadJSON decodes the value under key into v, treating absent or malformed
// data as absent.
func (l *Library) loadJSON(key string, v any) {
	raw, ok, err := l.st.Get(key)
	if err != nil {
		log.Printf("storage read failed key=%s err=%v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("discarding malformed stored value key=%s err=%v", key, err)
	}
}

// stamp returns a strictly increasing lastUpdated value in milliseconds.
func (l *Library) stamp() int64 {
	ts := l.now().UnixMilli()
	if ts <= l.lastStamp {
		ts = l.lastStamp + 1
	}
	l.lastStamp = ts
	return ts
}

func (l *Library) persistChannels() {
	data, err := json.Marshal(l.channels)
	if err != nil {
		log.Printf("encode channels: %v", err)
		return
	}
	if err := l.st.Set(store.KeyChannels, data); err != nil {
		log.Printf("storage write failed key=%s err=%v", store.KeyChannels, err)
	}
}

func (l *Library) persistLabels() {
	data, err := json.Marshal(l.labels)
	if err != nil {
		log.Printf("encode labels: %v", err)
		return
	}
	if err := l.st.Set(store.KeyLabels, data); err != nil {
		log.Printf("storage write failed key=%s err=%v", store.KeyLabels, err)
	}
}

func (l *Library) persistVersion() {
	if err := l.st.Set(store.KeyVersion, []byte(DataVersion)); err != nil {
		log.Printf("storage write failed key=%s err=%v", store.KeyVersion, err)
	}
}

// Channels returns a deep copy of the collection in order.
func (l *Library) Channels() []Channel {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Channel, len(l.channels))
	for i, ch := range l.channels {
		out[i] = ch.Clone()
	}
	return out
}

// Channel returns a deep copy of one channel by id.
func (l *Library) Channel(id string) (Channel, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.channels {
		if ch.ID == id {
			return ch.Clone(), true
		}
	}
	return Channel{}, false
}

// Labels returns a copy of the current label set.
func (l *Library) Labels() Labels {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(Labels, len(l.labels))
	for k, v := range l.labels {
		out[k] = v
	}
	return out
}

// UpdateLabels merges the given overrides over the defaults and persists.
func (l *Library) UpdateLabels(overrides Labels) Labels {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.labels = MergeLabels(overrides)
	l.persistLabels()
	return l.labels
}

// AddChannel creates a custom channel and persists the collection.
func (l *Library) AddChannel(title, description, color string) Channel {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := NewChannel(title, description, color, l.now())
	ch.LastUpdated = l.stamp()
	l.channels = append(l.channels, ch)
	l.persistChannels()
	return ch.Clone()
}

// UpdateChannel replaces a channel wholesale (dashboard save), restamping
// lastUpdated. The channel id must already exist.
func (l *Library) UpdateChannel(updated Channel) (Channel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.channels {
		if l.channels[i].ID == updated.ID {
			updated.LastUpdated = l.stamp()
			if updated.Activities == nil {
				updated.Activities = []Activity{}
			}
			l.channels[i] = updated.Clone()
			l.persistChannels()
			return updated.Clone(), nil
		}
	}
	return Channel{}, ErrChannelNotFound
}

// DeleteChannel removes a channel by id. Built-ins can be deleted too, but
// the repair routine reinstates them on the next version bump.
func (l *Library) DeleteChannel(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.channels {
		if l.channels[i].ID == id {
			l.channels = append(l.channels[:i], l.channels[i+1:]...)
			l.persistChannels()
			return nil
		}
	}
	return ErrChannelNotFound
}

// AddActivity appends a new activity of the given type to a channel.
func (l *Library) AddActivity(channelID string, t ActivityType, title string) (Activity, error) {
	if !t.Valid() {
		return Activity{}, ErrUnknownType
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := l.findChannel(channelID)
	if ch == nil {
		return Activity{}, ErrChannelNotFound
	}
	a := NewActivity(t, title)
	ch.Activities = append(ch.Activities, a)
	ch.LastUpdated = l.stamp()
	l.persistChannels()
	return a.clone(), nil
}

// DeleteActivity removes an activity from a channel.
func (l *Library) DeleteActivity(channelID, activityID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := l.findChannel(channelID)
	if ch == nil {
		return ErrChannelNotFound
	}
	for i := range ch.Activities {
		if ch.Activities[i].ID == activityID {
			ch.Activities = append(ch.Activities[:i], ch.Activities[i+1:]...)
			ch.LastUpdated = l.stamp()
			l.persistChannels()
			return nil
		}
	}
	return ErrActivityNotFound
}

// SaveQuestion inserts or replaces a question in an activity. A question
// with an empty id is appended with a fresh one. Wheel activities always get
// the fixed segment options regardless of what the caller sent.
func (l *Library) SaveQuestion(channelID, activityID string, q Question) (Question, error) {
	if q.QuestionText == "" && q.QuestionImage == "" {
		return Question{}, ErrEmptyQuestion
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := l.findChannel(channelID)
	if ch == nil {
		return Question{}, ErrChannelNotFound
	}
	a, ok := ch.Activity(activityID)
	if !ok {
		return Question{}, ErrActivityNotFound
	}
	if a.Type == TypeWheel {
		q.Options = WheelOptions()
	}
	if a.Content == nil {
		a.Content = &Content{}
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
		a.Content.Questions = append(a.Content.Questions, q)
	} else {
		replaced := false
		for i := range a.Content.Questions {
			if a.Content.Questions[i].ID == q.ID {
				a.Content.Questions[i] = q
				replaced = true
				break
			}
		}
		if !replaced {
			return Question{}, ErrQuestionNotFound
		}
	}
	ch.LastUpdated = l.stamp()
	l.persistChannels()
	return q, nil
}

// DeleteQuestion removes a question from an activity.
func (l *Library) DeleteQuestion(channelID, activityID, questionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := l.findChannel(channelID)
	if ch == nil {
		return ErrChannelNotFound
	}
	a, ok := ch.Activity(activityID)
	if !ok {
		return ErrActivityNotFound
	}
	if a.Content == nil {
		return ErrQuestionNotFound
	}
	for i := range a.Content.Questions {
		if a.Content.Questions[i].ID == questionID {
			a.Content.Questions = append(a.Content.Questions[:i], a.Content.Questions[i+1:]...)
			ch.LastUpdated = l.stamp()
			l.persistChannels()
			return nil
		}
	}
	return ErrQuestionNotFound
}

// Export snapshots the whole document for backup download.
func (l *Library) Export() Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	channels := make([]Channel, len(l.channels))
	for i, ch := range l.channels {
		channels[i] = ch.Clone()
	}
	labels := make(Labels, len(l.labels))
	for k, v := range l.labels {
		labels[k] = v
	}
	return Document{Channels: channels, Labels: labels, Version: DataVersion}
}

// Import replaces the entire channel collection (and labels, when the backup
// carries them) with sanitized imported data, then persists everything and
// stamps the current version. Destructive; callers confirm with the user
// before invoking.
func (l *Library) Import(data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	channels, labels, err := ParseBackup(data, l.now())
	if err != nil {
		return err
	}
	l.channels = channels
	if labels != nil {
		l.labels = MergeLabels(labels)
		l.persistLabels()
	}
	l.persistChannels()
	l.persistVersion()
	return nil
}

func (l *Library) findChannel(id string) *Channel {
	for i := range l.channels {
		if l.channels[i].ID == id {
			return &l.channels[i]
		}
	}
	return nil
}
