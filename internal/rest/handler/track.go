package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/casavia/engage/internal/database"
	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/casavia/engage/internal/rest/middleware/auth"
	restTypes "github.com/casavia/engage/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// maxTrackBodySize caps the optional metadata payload on tracking calls.
const maxTrackBodySize = 16 << 10

// TrackHandler handles interaction tracking endpoints. Each endpoint
// appends one event type; debounced duplicates are acknowledged the same
// as recorded events so clients never need to care.
type TrackHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTrackHandler creates a new tracking handler.
func NewTrackHandler(db database.Client, logger *zap.Logger) *TrackHandler {
	return &TrackHandler{
		db:     db,
		logger: logger,
	}
}

// trackRequest is the optional body on tracking calls.
type trackRequest struct {
	Metadata map[string]any `json:"metadata"`
}

// TrackImpression records a search result impression.
func (h *TrackHandler) TrackImpression(w http.ResponseWriter, req bunrouter.Request) error {
	return h.track(w, req, enum.EventTypeImpression)
}

// TrackView records a listing detail view.
func (h *TrackHandler) TrackView(w http.ResponseWriter, req bunrouter.Request) error {
	return h.track(w, req, enum.EventTypeView)
}

// TrackShare records a share action.
func (h *TrackHandler) TrackShare(w http.ResponseWriter, req bunrouter.Request) error {
	return h.track(w, req, enum.EventTypeShare)
}

// TrackContactClick records a reveal of the owner's contact details.
func (h *TrackHandler) TrackContactClick(w http.ResponseWriter, req bunrouter.Request) error {
	return h.track(w, req, enum.EventTypeContactClick)
}

// TrackPhoneClick records a tap on the owner's phone number.
func (h *TrackHandler) TrackPhoneClick(w http.ResponseWriter, req bunrouter.Request) error {
	return h.track(w, req, enum.EventTypePhoneClick)
}

func (h *TrackHandler) track(w http.ResponseWriter, req bunrouter.Request, eventType enum.EventType) error {
	userID, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	listingID, err := strconv.ParseInt(req.Param("id"), 10, 64)
	if err != nil || listingID <= 0 {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return nil
	}

	var metadata map[string]any

	body, err := io.ReadAll(io.LimitReader(req.Body, maxTrackBodySize))
	if err == nil && len(body) > 0 {
		var trackReq trackRequest
		if err := sonic.Unmarshal(body, &trackReq); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return nil
		}

		metadata = trackReq.Metadata
	}

	err = h.db.Service().Engagement().RecordEvent(req.Context(), userID, listingID, eventType, metadata)
	if err != nil {
		h.logger.Error("Failed to record event",
			zap.String("eventType", eventType.String()),
			zap.Int64("listingID", listingID),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.TrackResponse{Success: true})
}
