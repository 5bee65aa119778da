package hat

import "errors"

var (
	// ErrEmptyHat indicates a hat created without any balls.
	ErrEmptyHat = errors.New("hat: must contain at least one ball")
	// ErrNegativeCount indicates a color with a negative ball count.
	ErrNegativeCount = errors.New("hat: ball count must not be negative")
	// ErrNegativeDraw indicates a request to draw fewer than zero balls.
	ErrNegativeDraw = errors.New("hat: cannot draw a negative number of balls")
	// ErrNilHat indicates Experiment was given no hat.
	ErrNilHat = errors.New("hat: hat is nil")
	// ErrNoTrials indicates Experiment was asked to run fewer than one trial.
	ErrNoTrials = errors.New("hat: experiment needs at least one trial")
)
