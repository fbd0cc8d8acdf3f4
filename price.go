package mensa

import (
	"strconv"
	"strings"
)

// MealPrice is the three-tier price of a meal in cents: students pay the
// lowest rate, staff the medium rate, guests the expensive rate. The source
// data carries no ordering guarantee between the tiers.
type MealPrice struct {
	Student   int `json:"student"`
	Medium    int `json:"medium"`
	Expensive int `json:"expensive"`
}

// ParseMealPrice parses a price string from the menu page, e.g.
// "Preis 2,50/3,80/4,90". The leading label is discarded at the first
// space; amounts use a comma decimal separator and are converted to cents
// by multiplying by 100 and truncating toward zero.
//
// Truncation of the float product is intentional: it reproduces the
// behavior observed on the origin data, where prices always carry exactly
// two decimals. Inputs landing on a representation boundary (e.g. x.005)
// may truncate down.
func ParseMealPrice(s string) (MealPrice, error) {
	_, rest, found := strings.Cut(strings.TrimSpace(s), " ")
	if !found {
		return MealPrice{}, Errorf(EINVALID, "invalid price %q: missing label", s)
	}

	pieces := strings.Split(strings.ReplaceAll(rest, ",", "."), "/")
	amounts := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		v, err := strconv.ParseFloat(piece, 64)
		if err != nil {
			return MealPrice{}, Errorf(EINVALID, "invalid price %q: bad amount %q", s, piece)
		}
		amounts = append(amounts, int(v*100))
	}
	if len(amounts) < 3 {
		return MealPrice{}, Errorf(EINVALID, "invalid price %q: expected three amounts", s)
	}

	return MealPrice{
		Student:   amounts[0],
		Medium:    amounts[1],
		Expensive: amounts[2],
	}, nil
}
