package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
	"github.com/ratehub/fx_rates_service/internal/dto"
	"github.com/ratehub/fx_rates_service/internal/middleware"
)

const dateLayout = "2006-01-02"

// rateHandler handles HTTP requests related to stored exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
	defaultBase string
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, defaultBase string) *rateHandler {
	return &rateHandler{
		rateService: rs,
		defaultBase: defaultBase,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, defaultBase string) {
	h := newRateHandler(rateService, defaultBase)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
	}
}

// listRates serves the rate query surface: optional date, optional
// until_date, optional rate_base (config default when omitted). The engine
// syncs missing business days before answering.
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ListRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	base := req.RateBase
	if base == "" {
		base = h.defaultBase
	}
	base = strings.ToUpper(base)

	var date, untilDate *time.Time
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must use the 2006-01-02 format"})
			return
		}
		date = &d

		// until_date only bounds a query that has a start date; without one
		// the request is an unbounded listing.
		if req.UntilDate != "" {
			u, err := time.Parse(dateLayout, req.UntilDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "until_date must use the 2006-01-02 format"})
				return
			}
			untilDate = &u
		}
	}

	logger.Info("Received rate query",
		slog.String("base", base),
		slog.String("date", req.Date),
		slog.String("until_date", req.UntilDate),
	)

	rates, err := h.rateService.GetRates(c.Request.Context(), base, date, untilDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCurrencyNotFound),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Rate query rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrProviderUnavailable):
			logger.Error("Rate provider unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Rate provider unavailable"})
		default:
			logger.Error("Failed to query rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}
