package units

// TimeScale tags the linear family of time units. The family reference
// is the second.
type TimeScale struct{}

// Second is the SI second.
type Second struct{}

func (Second) Symbol() string            { return "s" }
func (Second) ScaleIn(TimeScale) float64 { return 1 }

// Minute is 60 seconds.
type Minute struct{}

func (Minute) Symbol() string            { return "min" }
func (Minute) ScaleIn(TimeScale) float64 { return 60 }

// Hour is 3600 seconds.
type Hour struct{}

func (Hour) Symbol() string            { return "h" }
func (Hour) ScaleIn(TimeScale) float64 { return 3600 }
