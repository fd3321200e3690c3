package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/dto"
	"github.com/restolane/resto_management_app/internal/middleware"
)

// reportingHandler handles HTTP requests for derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/cash-flow", h.getCashFlow)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Derives per-account debit/credit columns from current balances, with column totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to derive trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for trial balance")

	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive trial balance"})
		return
	}

	logger.Info("Trial balance derived successfully", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{Report: *report})
}

// getProfitAndLoss godoc
// @Summary Get the profit and loss statement
// @Description Derives revenue and expense breakdowns and net income from current balances
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.PAndLResponse
// @Failure 500 {object} map[string]string "Failed to derive profit and loss"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for profit and loss")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive profit and loss"})
		return
	}

	logger.Info("Profit and loss derived successfully", slog.String("net_income", report.NetIncome.String()))
	c.JSON(http.StatusOK, dto.PAndLResponse{Report: *report})
}

// getCashFlow godoc
// @Summary Get the cash flow statement
// @Description Returns the operating, investing and financing sections with section totals and the ending cash position
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.CashFlowResponse
// @Failure 500 {object} map[string]string "Failed to derive cash flow"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for cash flow statement")

	report, err := h.reportingService.CashFlow(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive cash flow statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive cash flow"})
		return
	}

	logger.Info("Cash flow statement derived successfully", slog.String("net_cash_flow", report.NetCashFlow.String()))
	c.JSON(http.StatusOK, dto.CashFlowResponse{Report: *report})
}
