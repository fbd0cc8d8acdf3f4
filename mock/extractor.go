package mock

import "github.com/pwalkow/mensa"

var _ mensa.MenuExtractor = (*MenuExtractor)(nil)

// MenuExtractor is a mock implementation of mensa.MenuExtractor.
type MenuExtractor struct {
	ExtractFn func(html string, date mensa.Date) (*mensa.MensaMenu, error)
}

func (e *MenuExtractor) Extract(html string, date mensa.Date) (*mensa.MensaMenu, error) {
	return e.ExtractFn(html, date)
}
