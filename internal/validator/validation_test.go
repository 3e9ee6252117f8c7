package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCity(t *testing.T) {
	c, err := ValidateCity("  New York ")
	require.NoError(t, err)
	assert.Equal(t, "New York", c)

	_, err = ValidateCity(" x ")
	assert.Error(t, err)
}

func TestValidateDate(t *testing.T) {
	_, err := ValidateDate("2025-12-24")
	assert.NoError(t, err)

	_, err = ValidateDate("24/12/2025")
	assert.EqualError(t, err, "invalid departure_date, want YYYY-MM-DD")
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("nights", 1, 1, 365))
	assert.NoError(t, ValidateRange("nights", 365, 1, 365))
	assert.EqualError(t, ValidateRange("passengers", 10, 1, 9), "invalid or excessive passengers")
	assert.Error(t, ValidateRange("passengers", 0, 1, 9))
}
