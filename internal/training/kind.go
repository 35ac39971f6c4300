package training

// Kind identifies which set of formulas a training uses
type Kind int

const (
	Running Kind = iota
	SportsWalking
	Swimming
)

// kindInfo holds the fixed properties of each kind
type kindInfo struct {
	label   string
	tag     string
	arity   int
	lenStep float64
}

var kinds = map[Kind]kindInfo{
	Running:       {label: "Running", tag: "RUN", arity: 3, lenStep: LenStep},
	SportsWalking: {label: "SportsWalking", tag: "WLK", arity: 4, lenStep: LenStep},
	Swimming:      {label: "Swimming", tag: "SWM", arity: 5, lenStep: SwimmingLenStep},
}

// String returns the label shown in reports
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.label
	}
	return "Unknown"
}

// Tag returns the sensor package tag for the kind ("RUN", "WLK", "SWM")
func (k Kind) Tag() string {
	return kinds[k].tag
}

// Arity returns the number of values a sensor package of this kind carries
func (k Kind) Arity() int {
	return kinds[k].arity
}

// StepLength returns the distance covered per action in meters
func (k Kind) StepLength() float64 {
	return kinds[k].lenStep
}

// Kinds returns all kinds in declaration order
func Kinds() []Kind {
	return []Kind{Running, SportsWalking, Swimming}
}
