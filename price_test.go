package mensa_test

import (
	"testing"

	"github.com/pwalkow/mensa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealPrice(t *testing.T) {
	t.Parallel()

	t.Run("parses a labeled tri-tier price", func(t *testing.T) {
		t.Parallel()

		price, err := mensa.ParseMealPrice("Preis 2,50/3,80/4,90")

		require.NoError(t, err)
		assert.Equal(t, mensa.MealPrice{Student: 250, Medium: 380, Expensive: 490}, price)
	})

	t.Run("accepts any label and integer amounts", func(t *testing.T) {
		t.Parallel()

		price, err := mensa.ParseMealPrice("x 1/2/3")

		require.NoError(t, err)
		assert.Equal(t, mensa.MealPrice{Student: 100, Medium: 200, Expensive: 300}, price)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		price, err := mensa.ParseMealPrice("  Preis 2,50/3,80/4,90  ")

		require.NoError(t, err)
		assert.Equal(t, mensa.MealPrice{Student: 250, Medium: 380, Expensive: 490}, price)
	})

	t.Run("ignores amounts past the third but still parses them", func(t *testing.T) {
		t.Parallel()

		price, err := mensa.ParseMealPrice("Preis 1,00/2,00/3,00/4,00")
		require.NoError(t, err)
		assert.Equal(t, mensa.MealPrice{Student: 100, Medium: 200, Expensive: 300}, price)

		_, err = mensa.ParseMealPrice("Preis 1,00/2,00/3,00/abc")
		require.Error(t, err)
	})

	t.Run("truncates the float product toward zero", func(t *testing.T) {
		t.Parallel()

		// 0.999 * 100 = 99.9 and 2.675 * 100 rounds down in float64;
		// both truncate rather than round.
		price, err := mensa.ParseMealPrice("Preis 0,999/1,005/2,675")

		require.NoError(t, err)
		assert.Equal(t, mensa.MealPrice{Student: 99, Medium: 100, Expensive: 267}, price)
	})

	t.Run("fails with fewer than three amounts", func(t *testing.T) {
		t.Parallel()

		_, err := mensa.ParseMealPrice("Preis 2,50/3,80")

		require.Error(t, err)
		assert.Equal(t, mensa.EINVALID, mensa.ErrorCode(err))
	})

	t.Run("fails without a label separator", func(t *testing.T) {
		t.Parallel()

		_, err := mensa.ParseMealPrice("2,50/3,80/4,90")

		require.Error(t, err)
		assert.Equal(t, mensa.EINVALID, mensa.ErrorCode(err))
	})

	t.Run("fails on non-numeric amounts", func(t *testing.T) {
		t.Parallel()

		_, err := mensa.ParseMealPrice("Preis a/b/c")

		require.Error(t, err)
		assert.Equal(t, mensa.EINVALID, mensa.ErrorCode(err))
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		_, err := mensa.ParseMealPrice("")

		require.Error(t, err)
	})
}
