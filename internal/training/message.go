package training

import "fmt"

// InfoMessage holds the computed figures of a training
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64
}

// Message renders the report line. All numbers are printed with 3 decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Activity type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer
func (m InfoMessage) String() string {
	return m.Message()
}
