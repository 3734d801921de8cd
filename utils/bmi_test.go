package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 80)
	assert.NoError(t, err)
	assert.InDelta(t, 24.69, bmi, 0.01)
	assert.Equal(t, "Normal weight", BMICategory(bmi))
}

func TestCalculateBMIOutOfRange(t *testing.T) {
	_, err := CalculateBMI(0, 80)
	assert.Error(t, err)
	_, err = CalculateBMI(180, 0)
	assert.Error(t, err)
}
