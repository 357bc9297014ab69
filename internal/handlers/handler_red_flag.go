package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/dto"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/middleware"
)

// redFlagHandler handles HTTP requests related to red flags.
type redFlagHandler struct {
	redFlagService portssvc.RedFlagSvcFacade
}

func newRedFlagHandler(rs portssvc.RedFlagSvcFacade) *redFlagHandler {
	return &redFlagHandler{
		redFlagService: rs,
	}
}

// RegisterRedFlagRoutes registers routes related to red flags.
func RegisterRedFlagRoutes(rg *gin.RouterGroup, redFlagService portssvc.RedFlagSvcFacade) {
	h := newRedFlagHandler(redFlagService)

	flags := rg.Group("/red-flags")
	{
		flags.POST("/scan", h.scan)
		flags.POST("/scan-all", h.scanAll)
		flags.GET("", h.listRedFlags)
		flags.POST("/:flagID/resolve", h.resolveRedFlag)
	}
}

// scan godoc
// @Summary Scan for red flags
// @Description Runs the anomaly rules over a client's transactions and stores new flags
// @Tags red-flags
// @Accept  json
// @Produce  json
// @Param   request body dto.ScanRedFlagsRequest true "Scan scope"
// @Success 200 {object} dto.ScanRedFlagsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to scan for red flags"
// @Security BearerAuth
// @Router /red-flags/scan [post]
func (h *redFlagHandler) scan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ScanRedFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ScanRedFlags", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return
	}

	logger = logger.With(slog.String("client_id", req.ClientID))
	logger.Info("Received request to scan for red flags", slog.String("sheet_id", req.SheetID))

	scope := domain.TransactionScope{ClientID: req.ClientID, SheetID: req.SheetID, From: req.From, To: req.To}
	flags, summary, err := h.redFlagService.ScanForRedFlags(c.Request.Context(), scope)
	if err != nil {
		respondServiceError(c, logger, err, "Client not found", "Failed to scan for red flags")
		return
	}

	c.JSON(http.StatusOK, dto.ScanRedFlagsResponse{Flags: dto.ToRedFlagResponses(flags), Summary: *summary})
}

// scanAll godoc
// @Summary Scan every client
// @Description Scans each client with live transactions; a failing client is reported and skipped
// @Tags red-flags
// @Produce  json
// @Success 200 {object} dto.ScanAllClientsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to scan clients"
// @Security BearerAuth
// @Router /red-flags/scan-all [post]
func (h *redFlagHandler) scanAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to scan all clients")

	summaries, err := h.redFlagService.ScanAllClients(c.Request.Context(), nil)
	if err != nil {
		respondServiceError(c, logger, err, "No clients found", "Failed to scan clients")
		return
	}

	c.JSON(http.StatusOK, dto.ScanAllClientsResponse{Summaries: summaries})
}

// listRedFlags godoc
// @Summary List red flags
// @Description Lists a client's red flags newest first with token-based pagination
// @Tags red-flags
// @Produce  json
// @Param   clientID query string true "Client ID"
// @Param   resolved query bool false "Filter on resolved state"
// @Param   limit query int false "Page size; omit for all flags"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRedFlagsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list red flags"
// @Security BearerAuth
// @Router /red-flags [get]
func (h *redFlagHandler) listRedFlags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRedFlagsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRedFlags", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	flags, next, err := h.redFlagService.ListRedFlags(c.Request.Context(), params.ClientID, params.Resolved, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Client not found", "Failed to list red flags")
		return
	}

	c.JSON(http.StatusOK, dto.ListRedFlagsResponse{Flags: dto.ToRedFlagResponses(flags), NextToken: next})
}

// resolveRedFlag godoc
// @Summary Resolve a red flag
// @Description Marks a red flag as reviewed with a note
// @Tags red-flags
// @Accept  json
// @Produce  json
// @Param   flagID path string true "Red flag ID"
// @Param   request body dto.ResolveRedFlagRequest true "Resolution note"
// @Success 200 {object} dto.RedFlagResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Red flag not found"
// @Failure 500 {object} map[string]string "Failed to resolve red flag"
// @Security BearerAuth
// @Router /red-flags/{flagID}/resolve [post]
func (h *redFlagHandler) resolveRedFlag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	flagID := c.Param("flagID")

	var req dto.ResolveRedFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveRedFlag", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("flag_id", flagID))
	flag, err := h.redFlagService.ResolveRedFlag(c.Request.Context(), flagID, req.Note)
	if err != nil {
		respondServiceError(c, logger, err, "Red flag not found", "Failed to resolve red flag")
		return
	}

	logger.Info("Red flag resolved")
	c.JSON(http.StatusOK, dto.ToRedFlagResponse(*flag))
}
