package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/brettbedarf/webshell/requests"
	"github.com/labstack/echo/v4"
)

// ErrSessionNotFound is returned for an unknown or expired session ID
var ErrSessionNotFound = errors.New("session not found")

// Handler contains the HTTP handlers for the console API
type Handler struct {
	sessions *Sessions
	banner   string
}

func NewHandler(sessions *Sessions, banner string) *Handler {
	return &Handler{sessions: sessions, banner: banner}
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}

// HandleCreateSession handles POST /api/sessions
func (h *Handler) HandleCreateSession(c echo.Context) error {
	logger := util.GetLogger("Handler.CreateSession")

	id := h.sessions.Create()
	var cwd string
	if !h.sessions.With(id, func(con webshell.Console) { cwd = con.Cwd() }) {
		return mapError(c, ErrSessionNotFound)
	}
	logger.Debug().Str("session", id).Msg("Created session")

	return c.JSON(http.StatusCreated, requests.SessionDTO{ID: id, Cwd: cwd, Banner: h.banner})
}

// HandleSubmit handles POST /api/sessions/:id/submit.
// A command that fails still replies 200; the failure is in the result kind.
func (h *Handler) HandleSubmit(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return mapError(c, err)
	}
	input, err := requests.UnmarshalSubmitRequest(body)
	if err != nil {
		return mapError(c, err)
	}

	var dto requests.ResultDTO
	found := h.sessions.With(c.Param("id"), func(con webshell.Console) {
		res := con.Submit(input)
		dto = requests.NewResultDTO(res, con.Cwd())
	})
	if !found {
		return mapError(c, ErrSessionNotFound)
	}

	return c.JSON(http.StatusOK, dto)
}

// HandleHistoryPrevious handles GET /api/sessions/:id/history/previous
func (h *Handler) HandleHistoryPrevious(c echo.Context) error {
	return h.recall(c, webshell.Console.HistoryPrevious)
}

// HandleHistoryNext handles GET /api/sessions/:id/history/next
func (h *Handler) HandleHistoryNext(c echo.Context) error {
	return h.recall(c, webshell.Console.HistoryNext)
}

func (h *Handler) recall(c echo.Context, step func(webshell.Console) (string, bool)) error {
	var dto requests.HistoryDTO
	found := h.sessions.With(c.Param("id"), func(con webshell.Console) {
		dto = requests.NewHistoryDTO(step(con))
	})
	if !found {
		return mapError(c, ErrSessionNotFound)
	}

	return c.JSON(http.StatusOK, dto)
}

// HandleDeleteSession handles DELETE /api/sessions/:id
func (h *Handler) HandleDeleteSession(c echo.Context) error {
	if !h.sessions.Delete(c.Param("id")) {
		return mapError(c, ErrSessionNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

// mapError converts errors to HTTP responses
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, requests.ErrorDTO{Error: err.Error()})
	case errors.Is(err, requests.ErrMissingInput), errors.Is(err, requests.ErrMalformedRequest):
		return c.JSON(http.StatusBadRequest, requests.ErrorDTO{Error: err.Error()})
	}

	logger := util.GetLogger("Handler")
	logger.Error().Err(err).Msg("Unexpected error")
	return c.JSON(http.StatusInternalServerError, requests.ErrorDTO{Error: "internal server error"})
}
