package util

import (
	"fmt"
	"math"
)

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

// minuteEpsilon keeps values such as 1.15h from truncating to 68 minutes.
const minuteEpsilon = 1e-9

// FormatHours renders a duration in hours as "M minutes" below one hour and
// "H hours M minutes" otherwise. Minutes are truncated, not rounded.
func FormatHours(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return "n/a"
	}
	totalMinutes := int64(math.Floor(hours*60 + minuteEpsilon))
	if totalMinutes < 60 {
		return fmt.Sprintf("%d minutes", totalMinutes)
	}
	return fmt.Sprintf("%d hours %d minutes", totalMinutes/60, totalMinutes%60)
}
