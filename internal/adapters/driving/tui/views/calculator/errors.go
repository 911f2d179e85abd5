package calculator

import "errors"

// ErrNoCalculatorService indicates that no calculator service was provided.
var ErrNoCalculatorService = errors.New("calculator service is required")
