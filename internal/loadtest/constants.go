package loadtest

// Worker configuration constants.
const (
	maxViolationSamples = 10
	percentage          = 100
)

// Mark ranges for generated students.
const (
	markMin     = 0
	markMax     = 100
	markSpread  = 25
	profileLow  = 20
	profileHigh = 95
)
