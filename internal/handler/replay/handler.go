package replay

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/106-/wows-chat-viewer/internal/export"
	"github.com/106-/wows-chat-viewer/internal/metrics"
	"github.com/106-/wows-chat-viewer/internal/model/chat"
	replaypkg "github.com/106-/wows-chat-viewer/internal/replay"
	"github.com/106-/wows-chat-viewer/internal/service/extract"
	"github.com/106-/wows-chat-viewer/internal/service/session"
	"github.com/106-/wows-chat-viewer/pkg/utils"
)

// uploadField is the multipart form field carrying the replay file.
const uploadField = "replay"

// Handler exposes the upload/inspect/export surface over extracted
// replay chat.
type Handler struct {
	extractor *extract.Extractor
	sessions  *session.Service
	maxUpload int64
}

// New creates the replay HTTP handler.
func New(extractor *extract.Extractor, sessions *session.Service, maxUpload int64) *Handler {
	return &Handler{
		extractor: extractor,
		sessions:  sessions,
		maxUpload: maxUpload,
	}
}

// RegisterRoutes mounts the replay routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/replays", h.handleUpload)
	r.Get("/replays/{sessionID}/messages", h.handleMessages)
	r.Get("/replays/{sessionID}/stats", h.handleStats)
	r.Get("/replays/{sessionID}/export", h.handleExport)
}

// handleUpload reads the whole replay into memory, decodes it through
// the external unpacker and stores the extracted chat as a new
// session. Zero chat messages is a valid outcome, not an error.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "replay file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusRequestEntityTooLarge, "replay file too large")
		return
	}

	started := time.Now()
	records, err := h.extractor.Extract(r.Context(), data)
	metrics.ParseDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ReplaysParsed.WithLabelValues("error").Inc()
		if errors.Is(err, replaypkg.ErrDecode) {
			log.Printf("[upload] decode failed for %q: %v", header.Filename, err)
			utils.RespondError(w, http.StatusUnprocessableEntity, "could not read replay")
			return
		}
		log.Printf("[upload] unexpected error for %q: %v", header.Filename, err)
		utils.RespondError(w, http.StatusInternalServerError, "replay processing failed")
		return
	}
	metrics.ReplaysParsed.WithLabelValues("ok").Inc()
	metrics.MessagesExtracted.Add(float64(len(records)))

	name := header.Filename
	if name == "" {
		name = "replay"
	}
	sess := h.sessions.Create(r.Context(), name, records)
	metrics.ActiveSessions.Set(float64(h.sessions.Len()))

	stats, err := h.sessions.Stats(r.Context(), sess.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"session": sess,
		"stats":   stats,
	})
}

// handleMessages returns the session's records passing the query
// filter, in original order.
func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.sessions.Apply(r.Context(), chi.URLParam(r, "sessionID"), filter)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"messages": records,
		"total":    len(records),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sessions.Stats(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

// handleExport streams the filtered view as a downloadable file.
// Repeated exports of the same filtered view are byte-identical.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatText
	}
	if format != export.FormatText && format != export.FormatJSONL {
		utils.RespondError(w, http.StatusBadRequest, "unknown export format: "+format)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	sess, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	records, err := h.sessions.Apply(r.Context(), sessionID, filter)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	switch format {
	case export.FormatJSONL:
		data, err := export.JSONL(records)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "export failed")
			return
		}
		utils.RespondDownload(w, "application/x-ndjson", export.Filename(sess.ReplayName, format), data)
	default:
		utils.RespondDownload(w, "text/plain; charset=utf-8", export.Filename(sess.ReplayName, format), export.Text(records))
	}
}

// filterFromQuery builds the per-request filter. An unknown channel
// value is a client error rather than an empty result.
func filterFromQuery(r *http.Request) (chat.Filter, error) {
	q := r.URL.Query()

	var filter chat.Filter
	if raw := q.Get("channel"); raw != "" {
		channel, ok := chat.ParseChannel(raw)
		if !ok {
			return chat.Filter{}, errors.New("unknown channel: " + raw)
		}
		filter.Channel = channel
	}
	filter.Sender = q.Get("sender")
	filter.Text = q.Get("q")
	return filter, nil
}

func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, err.Error())
}
