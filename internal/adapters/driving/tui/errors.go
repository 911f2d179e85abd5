package tui

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// ErrMissingQuizService is returned when the quiz service is not provided.
var ErrMissingQuizService = errors.New("tui: quiz service is required")
