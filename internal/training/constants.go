package training

const (
	// Unit conversions
	MInKm     = 1000
	MinInH    = 60
	CmInM     = 100
	KmhInMsec = 0.278 // km/h to m/s

	// Distance covered per action, meters
	LenStep         = 0.65 // running and walking step
	SwimmingLenStep = 1.38 // swimming stroke

	// Running calorie coefficients
	RunningCaloriesMeanSpeedMultiplier = 18
	RunningCaloriesMeanSpeedShift      = 1.79

	// Sports walking calorie coefficients
	WalkingCaloriesWeightMultiplier = 0.035
	WalkingSpeedHeightMultiplier    = 0.029

	// Swimming calorie coefficients
	SwimmingCaloriesMeanSpeedShift   = 1.1
	SwimmingCaloriesWeightMultiplier = 2
)
