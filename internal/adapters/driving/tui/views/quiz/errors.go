package quiz

import "errors"

// ErrNoQuizService indicates that no quiz service was provided.
var ErrNoQuizService = errors.New("quiz service is required")
