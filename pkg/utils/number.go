package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToNearest arredonda para o inteiro mais próximo mantendo o tipo float64
func RoundToNearest(f float64) float64 {
	return math.Round(f)
}
