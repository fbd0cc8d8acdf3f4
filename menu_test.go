package mensa_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pwalkow/mensa"
	"github.com/pwalkow/mensa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuLoader_Menu(t *testing.T) {
	t.Parallel()

	date := mensa.NewDate(2025, time.March, 3)
	menu := &mensa.MensaMenu{Date: date, Groups: []mensa.MealGroup{}}

	t.Run("fetches the page and extracts it", func(t *testing.T) {
		t.Parallel()

		loader := &mensa.MenuLoader{
			Fetcher: &mock.PageFetcher{
				FetchPageFn: func(ctx context.Context, mensaID string, d mensa.Date) (string, error) {
					assert.Equal(t, "191", mensaID)
					assert.Equal(t, date, d)
					return "<html></html>", nil
				},
			},
			Extractor: &mock.MenuExtractor{
				ExtractFn: func(html string, d mensa.Date) (*mensa.MensaMenu, error) {
					assert.Equal(t, "<html></html>", html)
					return menu, nil
				},
			},
		}

		got, err := loader.Menu(context.Background(), "191", date)

		require.NoError(t, err)
		assert.Equal(t, menu, got)
	})

	t.Run("defaults an empty mensa ID", func(t *testing.T) {
		t.Parallel()

		loader := &mensa.MenuLoader{
			Fetcher: &mock.PageFetcher{
				FetchPageFn: func(ctx context.Context, mensaID string, d mensa.Date) (string, error) {
					assert.Equal(t, mensa.DefaultMensaID, mensaID)
					return "", nil
				},
			},
			Extractor: &mock.MenuExtractor{
				ExtractFn: func(html string, d mensa.Date) (*mensa.MensaMenu, error) {
					return menu, nil
				},
			},
		}

		_, err := loader.Menu(context.Background(), "", date)

		require.NoError(t, err)
	})

	t.Run("propagates fetch errors unwrapped", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		loader := &mensa.MenuLoader{
			Fetcher: &mock.PageFetcher{
				FetchPageFn: func(ctx context.Context, mensaID string, d mensa.Date) (string, error) {
					return "", fetchErr
				},
			},
			Extractor: &mock.MenuExtractor{
				ExtractFn: func(html string, d mensa.Date) (*mensa.MensaMenu, error) {
					t.Fatal("extractor must not be called after a fetch error")
					return nil, nil
				},
			},
		}

		_, err := loader.Menu(context.Background(), "322", date)

		assert.Same(t, fetchErr, err)
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		t.Parallel()

		loader := &mensa.MenuLoader{
			Fetcher: &mock.PageFetcher{
				FetchPageFn: func(ctx context.Context, mensaID string, d mensa.Date) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.MenuExtractor{
				ExtractFn: func(html string, d mensa.Date) (*mensa.MensaMenu, error) {
					return nil, mensa.ErrMealPriceNotFound
				},
			},
		}

		_, err := loader.Menu(context.Background(), "322", date)

		assert.ErrorIs(t, err, mensa.ErrMealPriceNotFound)
	})
}

func TestMensaMenu_JSON(t *testing.T) {
	t.Parallel()

	menu := &mensa.MensaMenu{
		Date: mensa.NewDate(2025, time.March, 3),
		Groups: []mensa.MealGroup{
			{
				Name: "Tagesgericht",
				Meals: []mensa.Meal{
					{
						Name:  "Linsensuppe",
						Price: mensa.MealPrice{Student: 250, Medium: 380, Expensive: 490},
						Tags: []mensa.MealTag{
							{Kind: mensa.TagVegan},
							mensa.Co2Tag(mensa.ColorGreen),
						},
					},
				},
			},
		},
	}

	out, err := json.Marshal(menu)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"date": "2025-03-03",
		"groups": [
			{
				"name": "Tagesgericht",
				"meals": [
					{
						"name": "Linsensuppe",
						"price": {"student": 250, "medium": 380, "expensive": 490},
						"tags": ["Vegan", {"Co2": "Green"}]
					}
				]
			}
		]
	}`, string(out))
}

func TestMenuRecord_Validate(t *testing.T) {
	t.Parallel()

	date := mensa.NewDate(2025, time.March, 3)
	menu := &mensa.MensaMenu{Date: date, Groups: []mensa.MealGroup{}}

	t.Run("accepts a complete record", func(t *testing.T) {
		t.Parallel()

		rec := &mensa.MenuRecord{MensaID: "322", Date: date, Menu: menu}
		assert.NoError(t, rec.Validate())
	})

	t.Run("requires a mensa ID", func(t *testing.T) {
		t.Parallel()

		rec := &mensa.MenuRecord{Date: date, Menu: menu}
		err := rec.Validate()

		require.Error(t, err)
		assert.Equal(t, mensa.EINVALID, mensa.ErrorCode(err))
	})

	t.Run("requires a menu", func(t *testing.T) {
		t.Parallel()

		rec := &mensa.MenuRecord{MensaID: "322", Date: date}
		assert.Error(t, rec.Validate())
	})

	t.Run("requires a date", func(t *testing.T) {
		t.Parallel()

		rec := &mensa.MenuRecord{MensaID: "322", Menu: menu}
		assert.Error(t, rec.Validate())
	})
}
