package training

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		workoutType string
		data        []float64
		expected    Training
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, NewSwimming(720, 1, 80, 25, 40)},
		{"RUN", []float64{15000, 1, 75}, NewRunning(15000, 1, 75)},
		{"WLK", []float64{9000, 1, 75, 180}, NewSportsWalking(9000, 1, 75, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.workoutType, func(t *testing.T) {
			got, err := ReadPackage(tt.workoutType, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.workoutType, got.Kind().Tag())
		})
	}
}

func TestReadPackageTruncatesAction(t *testing.T) {
	got, err := ReadPackage("RUN", []float64{1500.9, 1, 75})
	require.NoError(t, err)
	assert.Equal(t, 1500, got.Action())
}

func TestReadPackageUnknownType(t *testing.T) {
	_, first := ReadPackage("XYZ", []float64{1, 2, 3})
	_, second := ReadPackage("XYZ", []float64{1, 2, 3})

	require.Error(t, first)
	assert.True(t, errors.Is(first, ErrUnknownWorkoutType))
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, `unknown workout type: "XYZ"`, first.Error())
}

func TestReadPackageArgumentCount(t *testing.T) {
	tests := []struct {
		workoutType string
		data        []float64
	}{
		{"RUN", []float64{15000, 1}},
		{"RUN", []float64{15000, 1, 75, 180}},
		{"WLK", []float64{9000, 1, 75}},
		{"SWM", []float64{720, 1, 80, 25}},
		{"SWM", nil},
	}

	for _, tt := range tests {
		t.Run(tt.workoutType, func(t *testing.T) {
			_, err := ReadPackage(tt.workoutType, tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrArgumentCount)
			assert.NotErrorIs(t, err, ErrUnknownWorkoutType)
		})
	}
}
