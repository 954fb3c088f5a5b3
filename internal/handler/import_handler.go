package handler

import (
	"errors"
	"net/http"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/service"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ImportHandler handles the external-source import HTTP requests
type ImportHandler struct {
	importer  *service.ImportService
	publisher websocket.EventPublisher
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importer *service.ImportService, publisher websocket.EventPublisher) *ImportHandler {
	return &ImportHandler{importer: importer, publisher: publisher}
}

// CommitImportRequest carries the reviewed candidate entries
type CommitImportRequest struct {
	Entries []domain.ImportTransaction `json:"entries"`
}

// CommitImportResponse reports the created transactions
type CommitImportResponse struct {
	Imported []*domain.Transaction `json:"imported"`
	Count    int                   `json:"count"`
}

// GetProviders handles GET /api/v1/import/providers
func (h *ImportHandler) GetProviders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.importer.Providers())
}

// FetchCandidates handles POST /api/v1/import/:provider/fetch
func (h *ImportHandler) FetchCandidates(c echo.Context) error {
	providerID := c.Param("provider")

	candidates, err := h.importer.FetchCandidates(providerID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownProvider) {
			return NewNotFoundError(c, "Unknown import provider: "+providerID)
		}
		log.Error().Err(err).Str("provider", providerID).Msg("Failed to fetch import candidates")
		return NewInternalError(c, "Failed to fetch import candidates")
	}

	return c.JSON(http.StatusOK, candidates)
}

// CommitImport handles POST /api/v1/import/commit. Unselected or unassigned
// entries are skipped rather than rejected.
func (h *ImportHandler) CommitImport(c echo.Context) error {
	var req CommitImportRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	imported := h.importer.Commit(req.Entries)

	log.Info().Int("count", len(imported)).Msg("Import committed")
	for _, t := range imported {
		h.publisher.Publish(websocket.TransactionCreated(t))
	}

	return c.JSON(http.StatusCreated, CommitImportResponse{
		Imported: imported,
		Count:    len(imported),
	})
}
