package training

import "math"

// Training is a single recorded workout. It is immutable once constructed;
// every derived figure is recomputed from the raw inputs on demand.
type Training struct {
	kind     Kind
	action   int
	duration float64 // hours
	weight   float64 // kg

	height     float64 // cm, sports walking only
	lengthPool float64 // m, swimming only
	countPool  float64 // laps, swimming only
}

// NewRunning creates a running training
func NewRunning(action int, duration, weight float64) Training {
	return Training{
		kind:     Running,
		action:   action,
		duration: duration,
		weight:   weight,
	}
}

// NewSportsWalking creates a sports walking training. Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) Training {
	return Training{
		kind:     SportsWalking,
		action:   action,
		duration: duration,
		weight:   weight,
		height:   height,
	}
}

// NewSwimming creates a swimming training. lengthPool is the pool length in
// meters, countPool the number of laps swum.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) Training {
	return Training{
		kind:       Swimming,
		action:     action,
		duration:   duration,
		weight:     weight,
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Kind returns the workout kind
func (t Training) Kind() Kind { return t.kind }
func (t Training) Action() int { return t.action }
func (t Training) Duration() float64 { return t.duration }
func (t Training) Weight() float64 { return t.weight }
func (t Training) Height() float64 { return t.height }
func (t Training) LengthPool() float64 { return t.lengthPool }
func (t Training) CountPool() float64 { return t.countPool }

// Distance returns the distance covered in km
func (t Training) Distance() float64 {
	return float64(t.action) * t.kind.StepLength() / MInKm
}

// MeanSpeed returns the average speed over the whole duration in km/h.
// Swimming speed comes from pool geometry, not from the stroke count.
func (t Training) MeanSpeed() float64 {
	switch t.kind {
	case Swimming:
		return t.lengthPool * t.countPool / MInKm / t.duration
	default:
		return t.Distance() / t.duration
	}
}

// SpentCalories returns the calories burned during the training
func (t Training) SpentCalories() float64 {
	speed := t.MeanSpeed()

	switch t.kind {
	case Running:
		return (RunningCaloriesMeanSpeedMultiplier*speed + RunningCaloriesMeanSpeedShift) *
			t.weight / MInKm * t.duration * MinInH

	case SportsWalking:
		speedMsec := speed * KmhInMsec
		heightM := t.height / CmInM
		return (WalkingCaloriesWeightMultiplier*t.weight +
			math.Pow(speedMsec, 2)/heightM*WalkingSpeedHeightMultiplier*t.weight) *
			t.duration * MinInH

	case Swimming:
		return (speed + SwimmingCaloriesMeanSpeedShift) *
			SwimmingCaloriesWeightMultiplier * t.weight * t.duration
	}

	return 0
}

// Info returns the summary of the training ready for display
func (t Training) Info() InfoMessage {
	return InfoMessage{
		TrainingType: t.kind.String(),
		Duration:     t.duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
