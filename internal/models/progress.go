package models

// Band is the qualitative bucket of the overall progress.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGreat     Band = "great"
	BandGoodStart Band = "good start"
	BandKeepGoing Band = "keep going"
)

var bandMessages = map[Band]string{
	BandExcellent: "Excellent! You've completed all modules and assignments!",
	BandGreat:     "Great progress! Keep going to complete your learning journey.",
	BandGoodStart: "Good start! Submit more verifications to boost your progress.",
	BandKeepGoing: "Keep going! Complete modules and submit verifications to increase your progress.",
}

// Message returns the user-facing sentence for the band.
func (b Band) Message() string {
	return bandMessages[b]
}

// BandFor maps an overall percentage to its band.
func BandFor(overall int) Band {
	switch {
	case overall == 100:
		return BandExcellent
	case overall >= 60:
		return BandGreat
	case overall >= 30:
		return BandGoodStart
	default:
		return BandKeepGoing
	}
}

// WeekProgress is the binary completion of one reflection week.
type WeekProgress struct {
	Week    int
	Percent int // 0 or 100
}

// ProgressReport is the dashboard summary derived on demand.
type ProgressReport struct {
	CompletedReflections int
	TotalReflections     int
	CompletedAssignments int
	TotalAssignments     int

	// Overall is the rounded completion percentage over all items.
	Overall int
	Weeks   []WeekProgress
	Band    Band
}

// Message returns the band message of the report.
func (r ProgressReport) Message() string {
	return r.Band.Message()
}

// Degrees returns the angle of the circular progress indicator.
func (r ProgressReport) Degrees() float64 {
	return float64(r.Overall) / 100 * 360
}
