package sync

import (
	"errors"

	"boardsync/core/joblock"
	"boardsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests that trigger sync runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logg *zap.Logger) *Handler {
	return &Handler{service: service, logger: logg}
}

// RegisterRoutes registers the sync trigger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/roster", h.trigger(PhaseRoster))
	group.Post("/fleet", h.trigger(PhaseFleet))
	group.Post("/events", h.trigger(PhaseEvents))
	group.Post("/vacation", h.trigger(PhaseVacation))
	group.Post("/sickness", h.trigger(PhaseSickness))
	group.Post("/full", h.trigger(PhaseFull))
}

// trigger builds the handler for one phase.
// @Summary Trigger a sync phase
// @Description Runs the named sync phase (roster, fleet, events, vacation, sickness, or full) and returns per-phase summaries. Only one run may be active at a time.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Per-phase summaries"
// @Failure 409 {object} map[string]string "A sync run is already in progress"
// @Failure 500 {object} map[string]string "Sync run aborted"
// @Router /sync/{phase} [post]
func (h *Handler) trigger(phase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.logger, c)
		l.Info("Sync triggered", zap.String("phase", phase))

		result, err := h.service.Run(c.Context(), phase)
		if errors.Is(err, joblock.ErrBusy) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "a sync run is already in progress",
			})
		}
		if err != nil {
			l.Error("Sync run aborted", zap.String("phase", phase), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(result)
	}
}
