package servo

import (
	"bytes"
	"encoding/json"
	"errors"

	"servo-controller/core/utils"
)

// Validation failures are returned verbatim as the HTTP 400 body, so their
// text is part of the wire contract.
var (
	ErrMissingBody   = errors.New("Missing request body")
	ErrInvalidJSON   = errors.New("Invalid JSON")
	ErrMissingField  = errors.New("Missing 'position' field")
	ErrPositionRange = errors.New("Position must be 0-180")
)

// IsValidationErr reports whether err is a command validation failure, as
// opposed to a transport or shutdown error.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrMissingBody) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrPositionRange)
}

// parseCommand extracts the requested position from a raw request body.
// The position value is coerced the way lenient embedded JSON parsers read
// it: floats truncate, numeric strings parse, anything else reads as 0. The
// range check runs on the coerced value.
func parseCommand(payload []byte) (int, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return 0, ErrMissingBody
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return 0, ErrInvalidJSON
	}

	raw, ok := doc["position"]
	if !ok {
		return 0, ErrMissingField
	}

	pos := utils.ToInt(raw)
	if pos < MinPosition || pos > MaxPosition {
		return 0, ErrPositionRange
	}

	return pos, nil
}
