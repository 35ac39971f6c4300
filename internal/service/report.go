package service

import (
	"fmt"

	"ftracker/internal/config"
	"ftracker/internal/training"
)

// Report pairs a sensor package with the training read from it
type Report struct {
	Package  config.Package
	Training training.Training
	Info     training.InfoMessage
}

// Summary holds totals across a session of trainings
type Summary struct {
	Count         int
	TotalDuration float64 // hours
	TotalDistance float64 // km
	TotalCalories float64
	ByKind        map[training.Kind]int
}

// ReportService turns sensor packages into training reports
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildReport reads a single package and computes its report
func (s *ReportService) BuildReport(pkg config.Package) (Report, error) {
	t, err := training.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Package:  pkg,
		Training: t,
		Info:     t.Info(),
	}, nil
}

// BuildReports reads every package in order. The first package that
// cannot be read aborts the batch.
func (s *ReportService) BuildReports(pkgs []config.Package) ([]Report, error) {
	reports := make([]Report, 0, len(pkgs))
	for i, pkg := range pkgs {
		r, err := s.BuildReport(pkg)
		if err != nil {
			return nil, fmt.Errorf("reading package %d (%s): %w", i, pkg.Type, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Summarize sums duration, distance and calories across reports
func Summarize(reports []Report) Summary {
	sum := Summary{
		Count:  len(reports),
		ByKind: make(map[training.Kind]int),
	}
	for _, r := range reports {
		sum.TotalDuration += r.Info.Duration
		sum.TotalDistance += r.Info.Distance
		sum.TotalCalories += r.Info.Calories
		sum.ByKind[r.Training.Kind()]++
	}
	return sum
}

// Message renders the summary as a single line in the report style
func (s Summary) Message() string {
	return fmt.Sprintf("Workouts: %d; Duration: %.3f h; Distance: %.3f km; Calories: %.3f.",
		s.Count, s.TotalDuration, s.TotalDistance, s.TotalCalories)
}

// Calories returns the calories of each report in order, for charting
func Calories(reports []Report) []float64 {
	values := make([]float64, len(reports))
	for i, r := range reports {
		values[i] = r.Info.Calories
	}
	return values
}
