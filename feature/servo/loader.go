package servo

import (
	"context"

	"servo-controller/core/actuator"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the servo feature.
func NewFeature(driver actuator.Driver, link LinkMonitor, cfg Config, logger *zap.Logger, clk clock.Clock) *Feature {
	svc := NewService(driver, link, cfg, logger, clk)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "servo"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Run starts the control loop and blocks until ctx is cancelled.
func (f *Feature) Run(ctx context.Context) error {
	return f.service.Run(ctx)
}

// NotFoundHandler returns the catch-all usage responder. Mount it after
// every route so it only sees unmatched requests.
func (f *Feature) NotFoundHandler() fiber.Handler {
	return f.handler.NotFound
}
