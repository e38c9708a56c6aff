package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"lab4/internal/content"
	"lab4/internal/player"
	"lab4/internal/viewmodel"
	"lab4/pkg/realtime"
)

// PlayHandler serves the playback API: one server-side player session per
// started activity, with state streamed to the page over SSE.
type PlayHandler struct {
	library  *content.Library
	sessions *realtime.Hub[*player.Session]
}

func NewPlayHandler(library *content.Library) *PlayHandler {
	return &PlayHandler{
		library:  library,
		sessions: realtime.NewHub[*player.Session](),
	}
}

func (h *PlayHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/play", h.startSession)
	r.Route("/api/play/{id}", func(r chi.Router) {
		r.Get("/", h.snapshot)
		r.Get("/stream", h.stream)
		r.Post("/answer", h.answer)
		r.Post("/spin", h.spin)
		r.Post("/continue", h.continueAfterResult)
		r.Post("/restart", h.restart)
		r.Post("/exit", h.exit)
	})
}

// sseCues relays session cues to the session's SSE subscribers.
type sseCues struct {
	sessions *realtime.Hub[*player.Session]
	id       string
}

func (c sseCues) Correct() { c.sessions.Publish(c.id, "cue:correct") }
func (c sseCues) Wrong()   { c.sessions.Publish(c.id, "cue:wrong") }
func (c sseCues) Tick()    { c.sessions.Publish(c.id, "cue:tick") }
func (c sseCues) TimeUp()  { c.sessions.Publish(c.id, "cue:timeup") }

func (h *PlayHandler) startSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChannelID  string `json:"channelId"`
		ActivityID string `json:"activityId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	channel, ok := h.library.Channel(body.ChannelID)
	if !ok {
		writeError(w, http.StatusNotFound, "channel not found")
		return
	}
	activity, ok := channel.Activity(body.ActivityID)
	if !ok {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}

	id := uuid.NewString()
	session := player.NewSession(player.Config{
		Cues:     sseCues{sessions: h.sessions, id: id},
		OnChange: func(event string) { h.sessions.Publish(id, event) },
	})
	// Register before Start so events fired while loading question zero
	// reach subscribers-to-be; publishes to an unknown id are dropped.
	h.sessions.Put(id, session)

	if err := session.Start(*activity); err != nil {
		h.sessions.Remove(id)
		if errors.Is(err, player.ErrNoQuestions) {
			writeError(w, http.StatusUnprocessableEntity, "هذا النشاط لا يحتوي على محتوى.")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not start activity")
		return
	}
	writeJSON(w, http.StatusCreated, viewmodel.PlayStarted{SessionID: id})
}

func (h *PlayHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *PlayHandler) answer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	var body struct {
		Option int `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	session.Answer(body.Option)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *PlayHandler) spin(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	session.Spin()
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *PlayHandler) continueAfterResult(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	session.ContinueAfterResult()
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *PlayHandler) restart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err := session.Restart(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *PlayHandler) exit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok := h.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	session.Exit()
	h.sessions.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// stream pushes session state and cue events over SSE. Every state event
// carries a full snapshot; the page re-renders from it rather than from
// deltas, so dropped events are harmless.
func (h *PlayHandler) stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok := h.sessions.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hub := h.sessions.Broadcaster(id)
	if hub == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	sendState := func() {
		data, err := json.Marshal(session.Snapshot())
		if err != nil {
			return
		}
		writeSSE(w, "state", string(data))
		flusher.Flush()
	}
	sendState()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub:
			if !open {
				return
			}
			if cue, ok := strings.CutPrefix(event, "cue:"); ok {
				writeSSE(w, "cue", cue)
				flusher.Flush()
				continue
			}
			sendState()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}
