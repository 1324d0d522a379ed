package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para duas casas
// decimais, evitando ruído de ponto flutuante nas somas de GMV e comissão
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
