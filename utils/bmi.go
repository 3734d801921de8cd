package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
// Ranges match the profile validation bounds.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 100 || heightCm > 250 || weightKg < 20 || weightKg > 300 {
		return 0, errors.New("height/weight out of range")
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
