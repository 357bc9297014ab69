package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/dto"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/middleware"
)

// classificationHandler handles HTTP requests related to ledger classification.
type classificationHandler struct {
	classificationService portssvc.ClassificationSvcFacade
}

func newClassificationHandler(cs portssvc.ClassificationSvcFacade) *classificationHandler {
	return &classificationHandler{
		classificationService: cs,
	}
}

// RegisterClassificationRoutes registers routes related to classification.
func RegisterClassificationRoutes(rg *gin.RouterGroup, classificationService portssvc.ClassificationSvcFacade) {
	h := newClassificationHandler(classificationService)

	classifications := rg.Group("/classifications")
	{
		classifications.POST("/classify", h.classifyTransactions)
		classifications.POST("/bulk", h.bulkClassify)
		classifications.GET("/statistics", h.getStatistics)
		classifications.POST("/patterns/retrain", h.retrainPatterns)
	}

	transactions := rg.Group("/transactions/:transactionID/classification")
	{
		transactions.PUT("", h.overrideClassification)
		transactions.GET("/history", h.getHistory)
		transactions.GET("/suggestions", h.getSuggestions)
	}
}

// classifyTransactions godoc
// @Summary Classify transactions
// @Description Runs the rule classifier over the given transactions and writes the predicted ledgers
// @Tags classifications
// @Accept  json
// @Produce  json
// @Param   request body dto.ClassifyTransactionsRequest true "Transaction IDs"
// @Success 200 {object} dto.ClassifyTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to classify transactions"
// @Security BearerAuth
// @Router /classifications/classify [post]
func (h *classificationHandler) classifyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClassifyTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ClassifyTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to classify transactions", slog.Int("count", len(req.TransactionIDs)))
	results, err := h.classificationService.ClassifyTransactions(c.Request.Context(), req.TransactionIDs)
	if err != nil {
		respondServiceError(c, logger, err, "Transactions not found", "Failed to classify transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToClassifyTransactionsResponse(results))
}

// overrideClassification godoc
// @Summary Override a transaction's ledger
// @Description Sets the ledger by hand and records a manual override in the audit log
// @Tags classifications
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   request body dto.OverrideClassificationRequest true "New ledger and reason"
// @Success 200 {object} dto.ClassificationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to override classification"
// @Security BearerAuth
// @Router /transactions/{transactionID}/classification [put]
func (h *classificationHandler) overrideClassification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.OverrideClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OverrideClassification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID), slog.String("user_id", userID))
	logger.Info("Received request to override classification", slog.String("new_ledger", req.NewLedger))

	result, err := h.classificationService.OverrideClassification(c.Request.Context(), transactionID, req.NewLedger, req.Reason, &userID)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to override classification")
		return
	}

	c.JSON(http.StatusOK, dto.ToClassificationResponse(*result))
}

// getHistory godoc
// @Summary Get classification history
// @Description Returns a transaction's classification audit log, newest first
// @Tags classifications
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ClassificationHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve classification history"
// @Security BearerAuth
// @Router /transactions/{transactionID}/classification/history [get]
func (h *classificationHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	entries, err := h.classificationService.GetClassificationHistory(c.Request.Context(), transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to retrieve classification history")
		return
	}

	c.JSON(http.StatusOK, dto.ToClassificationHistoryResponse(transactionID, entries))
}

// getSuggestions godoc
// @Summary Suggest ledgers
// @Description Ranks candidate ledgers for a transaction by keyword matches
// @Tags classifications
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   topN query int false "Number of suggestions" default(3)
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to suggest ledgers"
// @Security BearerAuth
// @Router /transactions/{transactionID}/classification/suggestions [get]
func (h *classificationHandler) getSuggestions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var params dto.SuggestionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetSuggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	suggestions, err := h.classificationService.GetSuggestions(c.Request.Context(), transactionID, params.TopN)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to suggest ledgers")
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse{TransactionID: transactionID, Suggestions: suggestions})
}

// bulkClassify godoc
// @Summary Classify a whole sheet
// @Description Classifies every live transaction of a sheet and returns confidence statistics
// @Tags classifications
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkClassifyRequest true "Client and sheet"
// @Success 200 {object} domain.ClassificationStats
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to classify sheet"
// @Security BearerAuth
// @Router /classifications/bulk [post]
func (h *classificationHandler) bulkClassify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkClassify", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	stats, err := h.classificationService.BulkClassify(c.Request.Context(), req.ClientID, req.SheetID)
	if err != nil {
		respondServiceError(c, logger, err, "Sheet not found", "Failed to classify sheet")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getStatistics godoc
// @Summary Ledger statistics
// @Description Counts a client's transactions per ledger within an optional date range
// @Tags classifications
// @Produce  json
// @Param   clientID query string true "Client ID"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.LedgerStatistics
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /classifications/statistics [get]
func (h *classificationHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetStatistics", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.classificationService.GetStatistics(c.Request.Context(), params.ClientID, params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Client not found", "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// retrainPatterns godoc
// @Summary Retrain learned patterns
// @Description Recomputes learned ledger patterns from all manual overrides
// @Tags classifications
// @Produce  json
// @Success 200 {object} dto.PatternsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrain patterns"
// @Security BearerAuth
// @Router /classifications/patterns/retrain [post]
func (h *classificationHandler) retrainPatterns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	patterns, err := h.classificationService.RetrainPatterns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "No overrides found", "Failed to retrain patterns")
		return
	}

	c.JSON(http.StatusOK, dto.PatternsResponse{Patterns: patterns})
}
