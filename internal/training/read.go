package training

import (
	"errors"
	"fmt"
)

// ErrUnknownWorkoutType is returned when a sensor package carries an unknown tag
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// ErrArgumentCount is returned when a sensor package carries the wrong number of values
var ErrArgumentCount = errors.New("wrong number of values for workout type")

// constructors builds a training from package data whose arity was already checked
var constructors = map[string]struct {
	kind  Kind
	build func(data []float64) Training
}{
	"RUN": {Running, func(d []float64) Training {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {SportsWalking, func(d []float64) Training {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
	"SWM": {Swimming, func(d []float64) Training {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
	}},
}

// ReadPackage builds a training from a sensor package. data holds the
// constructor arguments in order: action, duration, weight, then the
// kind-specific values (height for WLK, pool length and lap count for SWM).
func ReadPackage(workoutType string, data []float64) (Training, error) {
	c, ok := constructors[workoutType]
	if !ok {
		return Training{}, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}

	if len(data) != c.kind.Arity() {
		return Training{}, fmt.Errorf("%w: %s expects %d, got %d",
			ErrArgumentCount, workoutType, c.kind.Arity(), len(data))
	}

	return c.build(data), nil
}
