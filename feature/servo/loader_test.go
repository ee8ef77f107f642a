package servo_test

import (
	"testing"

	"servo-controller/core/actuator"
	"servo-controller/feature/servo"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := servo.NewFeature(actuator.NewFake(), stubLink{}, testConfig, zap.NewNop(), clock.New())

	assert.Equal(t, "servo", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
