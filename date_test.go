package mensa_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pwalkow/mensa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("parses YYYY-MM-DD", func(t *testing.T) {
		t.Parallel()

		date, err := mensa.ParseDate("2025-03-03")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-03", date.String())
		assert.Equal(t, time.Monday, date.Weekday())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", "03.03.2025", "2025-3-3", "2025-03-03T00:00:00Z", "not a date"} {
			_, err := mensa.ParseDate(s)
			require.Error(t, err, "input %q", s)
			assert.Equal(t, mensa.EINVALID, mensa.ErrorCode(err))
		}
	})
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()

	date := mensa.NewDate(2025, time.February, 28)

	assert.Equal(t, "2025-03-01", date.AddDays(1).String())
	assert.Equal(t, "2025-02-24", date.AddDays(-4).String())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as a quoted string", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(mensa.NewDate(2025, time.March, 3))

		require.NoError(t, err)
		assert.Equal(t, `"2025-03-03"`, string(out))
	})

	t.Run("round-trips", func(t *testing.T) {
		t.Parallel()

		date := mensa.NewDate(2025, time.March, 3)
		out, err := json.Marshal(date)
		require.NoError(t, err)

		var decoded mensa.Date
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, date, decoded)
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()

		var date mensa.Date
		err := json.Unmarshal([]byte(`20250303`), &date)

		require.Error(t, err)
	})
}

func TestToday(t *testing.T) {
	t.Parallel()

	assert.False(t, mensa.Today().IsZero())
}
