package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restolane/resto_management_app/internal/apperrors"
	portssvc "github.com/restolane/resto_management_app/internal/core/ports/services"
	"github.com/restolane/resto_management_app/internal/dto"
	"github.com/restolane/resto_management_app/internal/middleware"
)

// supplierHandler handles HTTP requests for the supplier lookup directory.
type supplierHandler struct {
	supplierService portssvc.SupplierSvc
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvc) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvc) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
	}
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves the supplier directory
// @Tags suppliers
// @Produce  json
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list suppliers")

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	logger.Info("Suppliers listed successfully", slog.Int("count", len(suppliers)))
	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Description Retrieves a single supplier from the directory
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supplier"
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	logger = logger.With(slog.String("target_supplier_id", supplierID))
	logger.Info("Received request to get supplier")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to get supplier from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		}
		return
	}

	logger.Info("Supplier retrieved successfully")
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}
