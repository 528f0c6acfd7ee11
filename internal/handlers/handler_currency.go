package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
	"github.com/ratehub/fx_rates_service/internal/dto"
	"github.com/ratehub/fx_rates_service/internal/middleware"
)

// currencyHandler handles HTTP requests related to the currency directory.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:shortName", h.getCurrencyByShortName)
		currencies.POST("", h.createCurrency)
	}
}

// listCurrencies returns all currencies, or a single one when filtered with
// the name query parameter.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if name := c.Query("name"); name != "" {
		currency, err := h.currencyService.GetCurrencyByName(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to find currency by name", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find currency"})
			return
		}
		c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByShortName returns the currency carrying the 3-letter code.
func (h *currencyHandler) getCurrencyByShortName(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	shortName := c.Param("shortName")

	if len(shortName) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByShortName(c.Request.Context(), shortName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency adds a currency to the directory (seed data plane).
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		return
	}

	logger.Info("Currency created", slog.String("short_name", created.ShortName))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}
