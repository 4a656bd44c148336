package ports

// FillMode is the content written into a dummy file.
type FillMode string

const (
	FillModeZero   FillMode = "zero"
	FillModeRandom FillMode = "random"
)

// FillModeOf maps the fillWithZeros switch used by the front ends to a FillMode.
func FillModeOf(fillWithZeros bool) FillMode {
	if fillWithZeros {
		return FillModeZero
	}
	return FillModeRandom
}
