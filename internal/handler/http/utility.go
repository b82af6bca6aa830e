package http

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/utils"
	"github.com/MKhiriev/renglo-api/models"
)

const (
	indexFile = "index.html"

	currentUserCookie = "current_user"
	currentUserID     = "7e5fb15bb"

	maxMessageBytes = 1 << 20
)

// index serves the front-end entry point. Only a missing file falls back to
// the API banner; any other read failure is a 500.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("hitting the root")

	page, err := os.ReadFile(filepath.Join(h.options.StaticDir, indexFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		_, _ = utils.WriteJSON(w, models.StatusResponse{
			Message: "Renglo API is running",
			Version: models.APIVersion,
		}, http.StatusOK)
		return
	case err != nil:
		log.Err(err).Str("dir", h.options.StaticDir).Msg("error reading index page")
		utils.WriteError(w, MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	logger.FromRequest(r).Info().Float64("time", utils.UnixSeconds(now)).Msg("ping")

	_, _ = utils.WriteJSON(w, models.PingResponse{Pong: true, Time: utils.UnixSeconds(now)}, http.StatusOK)
}

// getTime is mounted behind the auth middleware.
func (h *Handler) getTime(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.TimeResponse{Time: utils.UnixSeconds(time.Now())}, http.StatusOK)
}

// getTimex is the unguarded variant of getTime that also pins the session
// user cookie.
func (h *Handler) getTimex(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     currentUserCookie,
		Value:    currentUserID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_, _ = utils.WriteJSON(w, models.TimeResponse{Time: utils.UnixSeconds(time.Now())}, http.StatusOK)
}

// message echoes a JSON payload back. An empty body is echoed as null;
// bodies over maxMessageBytes are rejected with 413.
func (h *Handler) message(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMessageBytes))
	if err != nil {
		log.Err(err).Msg("error reading message body")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	var input json.RawMessage
	if len(body) > 0 {
		if !json.Valid(body) {
			log.Error().Msg(MsgInvalidJSON)
			utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
			return
		}
		input = body
	}

	event := log.Info()
	if input != nil {
		event = event.RawJSON("payload", input)
	}
	event.Msg("websocket message")

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		WS:    true,
		Time:  utils.UnixSeconds(time.Now()),
		Input: input,
	}, http.StatusOK)
}

// notFound answers every unmatched path with a redirect notice pointing at
// the front end.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("route not found")
	utils.WriteError(w, MsgStaticSiteMoved+h.frontendURL(), http.StatusMovedPermanently)
}
