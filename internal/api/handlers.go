package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cardfold/pkg/card/sink"
	"github.com/matzehuels/cardfold/pkg/errors"
	"github.com/matzehuels/cardfold/pkg/history"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

const defaultListLimit = 50

// cardResponse is the JSON shape returned for a card record.
type cardResponse struct {
	*history.Record
	ShareURL string `json:"share_url,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}

	rec := history.New()
	if s.baseURL != "" {
		opts.ShareURL = s.shareURL(rec.ID)
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	planJSON, err := sink.RenderJSON(result.Plan)
	if err != nil {
		writeError(w, err)
		return
	}

	rec.Occasion = opts.Occasion
	rec.ArtStyle = opts.ArtStyle
	rec.Description = opts.Description
	rec.Message = result.Message
	rec.ArtworkPrompt = result.ArtworkPrompt
	rec.PageFormat = opts.PageFormat
	rec.Style = opts.Style
	rec.Plan = planJSON

	if err := s.store.Put(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("created card",
		"id", rec.ID,
		"occasion", rec.Occasion,
		"formats", opts.Formats)

	writeJSON(w, http.StatusCreated, cardResponse{
		Record:   rec,
		ShareURL: opts.ShareURL,
	})
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context(), defaultListLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []*history.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(records),
		"cards": records,
	})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	rec, err := s.lookupCard(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cardResponse{
		Record:   rec,
		ShareURL: s.shareURL(rec.ID),
	})
}

// artifactContentTypes maps downloadable formats to their content type.
var artifactContentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	rec, err := s.lookupCard(r)
	if err != nil {
		writeError(w, err)
		return
	}

	format := chi.URLParam(r, "format")
	contentType, ok := artifactContentTypes[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format))
		return
	}

	plan, err := sink.ParseJSON(rec.Plan)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		PageFormat: rec.PageFormat,
		Style:      rec.Style,
		Formats:    []string{format},
		ShareURL:   s.shareURL(rec.ID),
	}
	artifacts, _, err := s.runner.RenderWithCacheInfo(r.Context(), plan, nil, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) lookupCard(r *http.Request) (*history.Record, error) {
	id := chi.URLParam(r, "cardID")
	if err := errors.ValidateCardID(id); err != nil {
		return nil, err
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New(errors.ErrCodeCardNotFound, "card not found: %s", id)
	}
	return rec, nil
}

func (s *Server) shareURL(id string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "/api/cards/" + id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidImageSpec, errors.ErrCodeInvalidMessageSpec,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidOccasion, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeCardNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}
