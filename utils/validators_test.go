package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"rider@example.com", "a.b+c@sub.domain.org"}
	invalid := []string{"", "rider", "rider@", "@example.com", "rider@example"}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestParseCC(t *testing.T) {
	cc, err := ParseCC("500")
	require.NoError(t, err)
	assert.Equal(t, 500, cc)

	_, err = ParseCC("fast")
	assert.Error(t, err)
	_, err = ParseCC("12.5")
	assert.Error(t, err)
	_, err = ParseCC("-10")
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	price, err := ParsePrice("5999.99")
	require.NoError(t, err)
	assert.Equal(t, 5999.99, price)

	_, err = ParsePrice("cheap")
	assert.Error(t, err)
	_, err = ParsePrice("-1")
	assert.Error(t, err)
}
