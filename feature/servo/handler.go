package servo

import (
	"fmt"

	"servo-controller/core/logger"
	"servo-controller/feature/servo/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the servo.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the servo routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/servo", h.HandleCommand)
	app.Get("/status", h.HandleStatus)
}

// HandleCommand validates a position command and applies it to the servo.
// @Summary Set servo position
// @Description Move the servo to a position between 0 and 180 degrees.
// @Tags servo
// @Accept json
// @Produce json
// @Param command body models.Command true "Target position"
// @Success 200 {object} models.CommandResponse "Applied position"
// @Failure 400 {string} string "Validation failure"
// @Router /servo [post]
func (h *Handler) HandleCommand(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	applied, err := h.service.Apply(c.Context(), c.Body())
	if err != nil {
		if IsValidationErr(err) {
			// The error text is the response body, verbatim.
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		l.Error("Servo command failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.CommandResponse{Status: "ok", Position: applied})
}

// HandleStatus reports position, uptime and wireless signal strength.
// @Summary Get controller status
// @Description Current position, uptime in milliseconds and wifi signal in dBm.
// @Tags servo
// @Produce json
// @Success 200 {object} models.StatusResponse "Controller status"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Snapshot(c.Context())
	if err != nil {
		l.Error("Status snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.StatusResponse{
		Status:       "ok",
		Position:     st.Position,
		Uptime:       st.Uptime.Milliseconds(),
		WifiStrength: st.WifiStrength,
	})
}

// NotFound answers anything no route matched with a plain-text usage summary
// that includes the current position. Mounted last, after every feature.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	st, err := h.service.Snapshot(c.Context())
	if err != nil {
		return err
	}

	usage := fmt.Sprintf(
		"Servo Controller\n\n"+
			"Available endpoints:\n"+
			"POST /servo - Set servo position (JSON: {\"position\": 0-180})\n"+
			"GET /status - Get current status\n\n"+
			"Current position: %d°\n",
		st.Position,
	)
	return c.Status(fiber.StatusNotFound).SendString(usage)
}
