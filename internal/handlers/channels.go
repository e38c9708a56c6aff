package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lab4/internal/content"
	"lab4/internal/viewmodel"
)

// maxBackupSize bounds import uploads; backups are text documents, not media.
const maxBackupSize = 16 << 20

// DashboardHandler serves the authoring API: channel, activity, question,
// and label editing plus backup export/import.
type DashboardHandler struct {
	library *content.Library
}

func NewDashboardHandler(library *content.Library) *DashboardHandler {
	return &DashboardHandler{library: library}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/channels", func(r chi.Router) {
		r.Get("/", h.listChannels)
		r.Post("/", h.createChannel)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getChannel)
			r.Put("/", h.updateChannel)
			r.Delete("/", h.deleteChannel)
			r.Post("/activities", h.addActivity)
			r.Route("/activities/{activityID}", func(r chi.Router) {
				r.Delete("/", h.deleteActivity)
				r.Post("/questions", h.saveQuestion)
				r.Delete("/questions/{questionID}", h.deleteQuestion)
			})
		})
	})
	r.Get("/api/labels", h.getLabels)
	r.Put("/api/labels", h.updateLabels)
	r.Get("/api/backup", h.exportBackup)
	r.Post("/api/backup", h.importBackup)
}

func (h *DashboardHandler) listChannels(w http.ResponseWriter, r *http.Request) {
	channels := h.library.Channels()
	summaries := make([]viewmodel.ChannelSummary, len(channels))
	for i, ch := range channels {
		summaries[i] = viewmodel.Summarize(ch)
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *DashboardHandler) createChannel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	ch := h.library.AddChannel(body.Title, body.Description, body.Color)
	writeJSON(w, http.StatusCreated, ch)
}

func (h *DashboardHandler) getChannel(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.library.Channel(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "channel not found")
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *DashboardHandler) updateChannel(w http.ResponseWriter, r *http.Request) {
	var ch content.Channel
	if err := json.NewDecoder(r.Body).Decode(&ch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	ch.ID = chi.URLParam(r, "id")
	updated, err := h.library.UpdateChannel(ch)
	if err != nil {
		h.libraryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *DashboardHandler) deleteChannel(w http.ResponseWriter, r *http.Request) {
	if err := h.library.DeleteChannel(chi.URLParam(r, "id")); err != nil {
		h.libraryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) addActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type  content.ActivityType `json:"type"`
		Title string               `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	activity, err := h.library.AddActivity(chi.URLParam(r, "id"), body.Type, body.Title)
	if err != nil {
		h.libraryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *DashboardHandler) deleteActivity(w http.ResponseWriter, r *http.Request) {
	err := h.library.DeleteActivity(chi.URLParam(r, "id"), chi.URLParam(r, "activityID"))
	if err != nil {
		h.libraryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) saveQuestion(w http.ResponseWriter, r *http.Request) {
	var q content.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	saved, err := h.library.SaveQuestion(chi.URLParam(r, "id"), chi.URLParam(r, "activityID"), q)
	if err != nil {
		h.libraryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *DashboardHandler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	err := h.library.DeleteQuestion(
		chi.URLParam(r, "id"),
		chi.URLParam(r, "activityID"),
		chi.URLParam(r, "questionID"),
	)
	if err != nil {
		h.libraryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) getLabels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Labels())
}

func (h *DashboardHandler) updateLabels(w http.ResponseWriter, r *http.Request) {
	var labels content.Labels
	if err := json.NewDecoder(r.Body).Decode(&labels); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, h.library.UpdateLabels(labels))
}

func (h *DashboardHandler) exportBackup(w http.ResponseWriter, r *http.Request) {
	doc := h.library.Export()
	filename := "lab4-project-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(doc)
}

// importBackup replaces the whole channel collection. Destructive, so the
// client must send confirm=true after prompting the user.
func (h *DashboardHandler) importBackup(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "import replaces all channels; pass confirm=true")
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read body")
		return
	}
	if err := h.library.Import(data); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "backup file is not valid")
		return
	}
	writeJSON(w, http.StatusOK, h.library.Export())
}

func (h *DashboardHandler) libraryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrChannelNotFound),
		errors.Is(err, content.ErrActivityNotFound),
		errors.Is(err, content.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, content.ErrUnknownType), errors.Is(err, content.ErrEmptyQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "unexpected error")
	}
}
