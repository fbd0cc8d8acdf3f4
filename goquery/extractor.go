// Package goquery provides the CSS-selector-based menu extraction for the
// Studierendenwerk menu page markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pwalkow/mensa"
	"golang.org/x/net/html"
)

// Selectors for the structural markers on the menu page. The page is an
// XHR fragment; the class names are stable across venues.
const (
	groupWrapperSelector = ".splGroupWrapper"
	groupLabelSelector   = ".splGroup"
	mealSelector         = ".splMeal"
	mealNameSelector     = "span.bold"
	priceSelector        = "div.text-right"
	tooltipSelector      = "span[role='tooltip']"
)

// Ensure Extractor implements mensa.MenuExtractor at compile time.
var _ mensa.MenuExtractor = (*Extractor)(nil)

// Extractor parses the menu page HTML into a structured menu. It is
// stateless and safe for concurrent use.
//
// Extraction is fail-fast: the first missing element or unparseable price
// aborts the whole document. A page with one malformed meal entry yields
// no menu at all rather than a menu missing that entry.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns the menu for the given date. The
// date is the caller's query date; the page itself carries no date.
// Malformed markup is tolerated per lenient HTML parsing.
func (e *Extractor) Extract(rawHTML string, date mensa.Date) (*mensa.MensaMenu, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mensa.Errorf(mensa.EINVALID, "failed to parse HTML: %v", err)
	}

	menu := &mensa.MensaMenu{
		Date:   date,
		Groups: []mensa.MealGroup{},
	}

	var extractErr error
	doc.Find(groupWrapperSelector).EachWithBreak(func(_ int, wrapper *goquery.Selection) bool {
		group, err := e.extractGroup(wrapper)
		if err != nil {
			extractErr = err
			return false
		}
		menu.Groups = append(menu.Groups, *group)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return menu, nil
}

func (e *Extractor) extractGroup(wrapper *goquery.Selection) (*mensa.MealGroup, error) {
	label := wrapper.Find(groupLabelSelector).First()
	if label.Length() == 0 {
		return nil, mensa.ErrCategoryNameNotFound
	}
	// The label may contain embedded formatting, so keep its inner HTML
	// rather than flattening to text.
	name, err := label.Html()
	if err != nil {
		return nil, mensa.ErrCategoryNameNotFound
	}

	group := &mensa.MealGroup{
		Name:  name,
		Meals: []mensa.Meal{},
	}

	var extractErr error
	wrapper.Find(mealSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		meal, err := e.extractMeal(sel)
		if err != nil {
			extractErr = err
			return false
		}
		group.Meals = append(group.Meals, *meal)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return group, nil
}

func (e *Extractor) extractMeal(sel *goquery.Selection) (*mensa.Meal, error) {
	nameField := sel.Find(mealNameSelector).First()
	if nameField.Length() == 0 {
		return nil, mensa.ErrMealNameNotFound
	}

	priceField := sel.Find(priceSelector).First()
	if priceField.Length() == 0 {
		return nil, mensa.ErrMealPriceNotFound
	}
	price, err := mensa.ParseMealPrice(textContent(priceField))
	if err != nil {
		return nil, mensa.ErrMealPriceNotFound
	}

	return &mensa.Meal{
		Name:  textContent(nameField),
		Price: price,
		Tags:  extractTags(sel),
	}, nil
}

// extractTags classifies the tooltip markers of a meal. Unrecognized codes
// are dropped; duplicates collapse, keeping first-occurrence order.
func extractTags(sel *goquery.Selection) []mensa.MealTag {
	tags := []mensa.MealTag{}
	seen := make(map[mensa.MealTag]struct{})

	sel.Find(tooltipSelector).Each(func(_ int, tooltip *goquery.Selection) {
		code, err := tooltip.Html()
		if err != nil {
			return
		}
		tag, ok := mensa.ParseMealTag(code)
		if !ok {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	})

	return tags
}

// textContent normalizes the text of a selection: every descendant text
// node is trimmed, the pieces are joined by single spaces, and the result
// is trimmed again.
func textContent(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
