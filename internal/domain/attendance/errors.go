package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidStatus = errors.New("status must be Present or Absent")
)
