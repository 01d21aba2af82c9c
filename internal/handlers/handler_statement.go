package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bistrobooks/backoffice/internal/apperrors"
	portssvc "github.com/bistrobooks/backoffice/internal/core/ports/services"
	"github.com/bistrobooks/backoffice/internal/dto"
	"github.com/bistrobooks/backoffice/internal/export"
	"github.com/bistrobooks/backoffice/internal/middleware"
)

const dateLayout = "2006-01-02"

// statementHandler handles HTTP requests related to financial statements
type statementHandler struct {
	statementService portssvc.StatementService
	strictDefault    bool
}

// newStatementHandler creates a new statementHandler
func newStatementHandler(ss portssvc.StatementService, strictDefault bool) *statementHandler {
	return &statementHandler{
		statementService: ss,
		strictDefault:    strictDefault,
	}
}

// RegisterStatementRoutes registers routes related to financial statements
func RegisterStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementService, strictDefault bool) {
	h := newStatementHandler(statementService, strictDefault)

	// Statements are nested under a specific restaurant
	statementGroup := rg.Group("/restaurants/:restaurant_id/statements")
	{
		statementGroup.GET("/trial-balance", h.getTrialBalance)
		statementGroup.GET("/income-statement", h.getIncomeStatement)
		statementGroup.GET("/balance-sheet", h.getBalanceSheet)
		statementGroup.GET("/cash-flow", h.getCashFlow)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance
// @Description Generates a trial balance as of a specific date. An out-of-balance ledger is reported in the payload, not as an error.
// @Tags statements
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /restaurants/{restaurant_id}/statements/trial-balance [get]
func (h *statementHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	restaurantID := c.Param("restaurant_id")
	if restaurantID == "" {
		logger.Error("Restaurant ID missing from path for getTrialBalance")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID required in path"})
		return
	}

	asOf, ok := h.parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("restaurant_id", restaurantID),
		slog.String("asOf", asOf.Format(dateLayout)),
	)
	logger.Info("Received request to generate trial balance")

	report, err := h.statementService.TrialBalance(c.Request.Context(), restaurantID, asOf)
	if err != nil {
		h.handleStatementError(c, logger, err, "trial balance")
		return
	}

	if wantsCSV(c) {
		h.writeCSV(c, logger, "trial-balance", asOf, func() error {
			return export.WriteTrialBalanceCSV(c.Writer, report)
		})
		return
	}

	response := dto.ToTrialBalanceResponse(report, asOf)

	logger.Info("Trial balance generated successfully", slog.Int("row_count", len(report.Rows)), slog.Bool("balanced", report.Balanced))
	c.JSON(http.StatusOK, response)
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Generates an income statement for a period, including accrual gap-filling for unposted inventory usage and payroll unless strict mode is requested.
// @Tags statements
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param strict query bool false "GL-only mode: suppress synthetic accrual entries" default(false)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /restaurants/{restaurant_id}/statements/income-statement [get]
func (h *statementHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	restaurantID := c.Param("restaurant_id")
	if restaurantID == "" {
		logger.Error("Restaurant ID missing from path for getIncomeStatement")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID required in path"})
		return
	}

	from, to, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	strict, ok := h.parseStrictQuery(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("restaurant_id", restaurantID),
		slog.String("fromDate", from.Format(dateLayout)),
		slog.String("toDate", to.Format(dateLayout)),
		slog.Bool("strict", strict),
	)
	logger.Info("Received request to generate income statement")

	report, err := h.statementService.IncomeStatement(c.Request.Context(), restaurantID, from, to, strict)
	if err != nil {
		h.handleStatementError(c, logger, err, "income statement")
		return
	}

	if wantsCSV(c) {
		h.writeCSV(c, logger, "income-statement", to, func() error {
			return export.WriteIncomeStatementCSV(c.Writer, report)
		})
		return
	}

	response := dto.ToIncomeStatementResponse(report, from, to)

	logger.Info("Income statement generated successfully",
		slog.String("net_income", report.NetIncome.String()),
		slog.String("revenue_source", string(report.RevenueSource)))
	c.JSON(http.StatusOK, response)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates a balance sheet as of a specific date. Current period net income is rolled into equity so the accounting identity holds.
// @Tags statements
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param strict query bool false "GL-only mode: suppress synthetic accrual entries" default(false)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /restaurants/{restaurant_id}/statements/balance-sheet [get]
func (h *statementHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	restaurantID := c.Param("restaurant_id")
	if restaurantID == "" {
		logger.Error("Restaurant ID missing from path for getBalanceSheet")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID required in path"})
		return
	}

	asOf, ok := h.parseDateQuery(c, "asOf", time.Now())
	if !ok {
		return
	}

	strict, ok := h.parseStrictQuery(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("restaurant_id", restaurantID),
		slog.String("asOf", asOf.Format(dateLayout)),
		slog.Bool("strict", strict),
	)
	logger.Info("Received request to generate balance sheet")

	report, err := h.statementService.BalanceSheet(c.Request.Context(), restaurantID, asOf, strict)
	if err != nil {
		h.handleStatementError(c, logger, err, "balance sheet")
		return
	}

	if wantsCSV(c) {
		h.writeCSV(c, logger, "balance-sheet", asOf, func() error {
			return export.WriteBalanceSheetCSV(c.Writer, report)
		})
		return
	}

	response := dto.ToBalanceSheetResponse(report, asOf)

	logger.Info("Balance sheet generated successfully", slog.Bool("balanced", report.Balanced))
	c.JSON(http.StatusOK, response)
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Generates a simplified cash flow statement for a period. All cash movement is attributed to operating activities.
// @Tags statements
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /restaurants/{restaurant_id}/statements/cash-flow [get]
func (h *statementHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	restaurantID := c.Param("restaurant_id")
	if restaurantID == "" {
		logger.Error("Restaurant ID missing from path for getCashFlow")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID required in path"})
		return
	}

	from, to, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("restaurant_id", restaurantID),
		slog.String("fromDate", from.Format(dateLayout)),
		slog.String("toDate", to.Format(dateLayout)),
	)
	logger.Info("Received request to generate cash flow statement")

	report, err := h.statementService.CashFlow(c.Request.Context(), restaurantID, from, to)
	if err != nil {
		h.handleStatementError(c, logger, err, "cash flow statement")
		return
	}

	if wantsCSV(c) {
		h.writeCSV(c, logger, "cash-flow", to, func() error {
			return export.WriteCashFlowCSV(c.Writer, report)
		})
		return
	}

	response := dto.ToCashFlowResponse(report, from, to)

	logger.Info("Cash flow statement generated successfully", slog.String("net_change", report.NetChange.String()))
	c.JSON(http.StatusOK, response)
}

// parseDateQuery parses a single YYYY-MM-DD query parameter, defaulting to def.
func (h *statementHandler) parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.DefaultQuery(name, def.Format(dateLayout))
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		logger.Warn("Invalid date format", slog.String(name, raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s date format. Use YYYY-MM-DD", name)})
		return time.Time{}, false
	}
	return parsed, true
}

// parsePeriod parses fromDate/toDate, defaulting to the current month to date.
func (h *statementHandler) parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	from, ok := h.parseDateQuery(c, "fromDate", firstOfMonth)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := h.parseDateQuery(c, "toDate", now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		logger.Warn("toDate precedes fromDate",
			slog.String("fromDate", from.Format(dateLayout)),
			slog.String("toDate", to.Format(dateLayout)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must not precede fromDate"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// parseStrictQuery parses the strict query flag, defaulting to the configured GL-only mode.
func (h *statementHandler) parseStrictQuery(c *gin.Context) (bool, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.DefaultQuery("strict", strconv.FormatBool(h.strictDefault))
	strict, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Invalid strict flag", slog.String("strict", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid strict flag. Use true or false"})
		return false, false
	}
	return strict, true
}

func wantsCSV(c *gin.Context) bool {
	return c.DefaultQuery("format", "json") == "csv"
}

// writeCSV streams a statement as a CSV attachment.
func (h *statementHandler) writeCSV(c *gin.Context, logger *slog.Logger, name string, date time.Time, write func() error) {
	filename := fmt.Sprintf("%s-%s.csv", name, date.Format(dateLayout))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := write(); err != nil {
		// Headers are already committed, nothing to do beyond logging.
		logger.Error("Failed to stream CSV statement", slog.String("statement", name), slog.String("error", err.Error()))
		return
	}
	logger.Info("Statement exported as CSV", slog.String("filename", filename))
}

// handleStatementError maps service errors to HTTP responses.
func (h *statementHandler) handleStatementError(c *gin.Context, logger *slog.Logger, err error, name string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid statement request", slog.String("statement", name), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to generate statement", slog.String("statement", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate %s", name)})
	}
}
