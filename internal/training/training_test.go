package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 0.001

func TestRunning(t *testing.T) {
	tr := NewRunning(15000, 1, 75)

	assert.Equal(t, Running, tr.Kind())
	assert.InDelta(t, 9.750, tr.Distance(), delta)
	assert.InDelta(t, 9.750, tr.MeanSpeed(), delta)
	// (18*9.75 + 1.79) * 75 / 1000 * 60
	assert.InDelta(t, 797.805, tr.SpentCalories(), delta)
}

func TestSportsWalking(t *testing.T) {
	tr := NewSportsWalking(9000, 1, 75, 180)

	assert.Equal(t, SportsWalking, tr.Kind())
	assert.InDelta(t, 5.850, tr.Distance(), delta)
	assert.InDelta(t, 5.850, tr.MeanSpeed(), delta)
	// (0.035*75 + (5.85*0.278)^2 / 1.8 * 0.029*75) * 60
	assert.InDelta(t, 349.252, tr.SpentCalories(), delta)
}

func TestSwimming(t *testing.T) {
	tr := NewSwimming(720, 1, 80, 25, 40)

	assert.Equal(t, Swimming, tr.Kind())
	assert.InDelta(t, 1.000, tr.MeanSpeed(), delta)
	assert.InDelta(t, 336.000, tr.SpentCalories(), delta)
	// stroke length, not step length
	assert.InDelta(t, 0.9936, tr.Distance(), delta)
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	few := NewSwimming(10, 2, 80, 50, 20)
	many := NewSwimming(100000, 2, 80, 50, 20)

	assert.Equal(t, few.MeanSpeed(), many.MeanSpeed())
	assert.InDelta(t, 0.5, few.MeanSpeed(), delta)
}

func TestSpentCaloriesFormulas(t *testing.T) {
	tests := []struct {
		name     string
		training Training
		expected func(speed float64) float64
	}{
		{
			name:     "running",
			training: NewRunning(8200, 1.5, 92),
			expected: func(v float64) float64 {
				return (RunningCaloriesMeanSpeedMultiplier*v + RunningCaloriesMeanSpeedShift) * 92 / MInKm * 1.5 * MinInH
			},
		},
		{
			name:     "sports walking",
			training: NewSportsWalking(4300, 0.75, 110, 201),
			expected: func(v float64) float64 {
				return (WalkingCaloriesWeightMultiplier*110 +
					(v*KmhInMsec)*(v*KmhInMsec)/(201.0/CmInM)*WalkingSpeedHeightMultiplier*110) * 0.75 * MinInH
			},
		},
		{
			name:     "swimming",
			training: NewSwimming(1200, 2.25, 64, 50, 9),
			expected: func(v float64) float64 {
				return (v + SwimmingCaloriesMeanSpeedShift) * SwimmingCaloriesWeightMultiplier * 64 * 2.25
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.expected(tt.training.MeanSpeed())
			assert.InDelta(t, want, tt.training.SpentCalories(), 1e-9)
		})
	}
}

func TestCalculatorsArePure(t *testing.T) {
	trainings := []Training{
		NewRunning(15000, 1, 75),
		NewSportsWalking(9000, 1, 75, 180),
		NewSwimming(720, 1, 80, 25, 40),
	}

	for _, tr := range trainings {
		t.Run(tr.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tr.Distance(), tr.Distance())
			assert.Equal(t, tr.MeanSpeed(), tr.MeanSpeed())
			assert.Equal(t, tr.SpentCalories(), tr.SpentCalories())
			assert.Equal(t, tr.Info(), tr.Info())
		})
	}
}

func TestZeroDurationIsNotValidated(t *testing.T) {
	tr := NewRunning(1000, 0, 75)

	assert.True(t, math.IsInf(tr.MeanSpeed(), 1), "MeanSpeed = %v, want +Inf", tr.MeanSpeed())
}

func TestKindProperties(t *testing.T) {
	tests := []struct {
		kind    Kind
		label   string
		tag     string
		arity   int
		lenStep float64
	}{
		{Running, "Running", "RUN", 3, 0.65},
		{SportsWalking, "SportsWalking", "WLK", 4, 0.65},
		{Swimming, "Swimming", "SWM", 5, 1.38},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.kind.String())
			assert.Equal(t, tt.tag, tt.kind.Tag())
			assert.Equal(t, tt.arity, tt.kind.Arity())
			assert.Equal(t, tt.lenStep, tt.kind.StepLength())
		})
	}

	assert.Equal(t, "Unknown", Kind(42).String())
	assert.Len(t, Kinds(), 3)
}
