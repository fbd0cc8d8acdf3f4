package mensa

import (
	"context"
	"time"
)

// DefaultMensaID is the resources_id of the default venue (Mensa TU
// Hardenbergstraße) used when the caller does not specify one.
const DefaultMensaID = "322"

// Meal is a single dish on the menu.
type Meal struct {
	Name  string    `json:"name"`
	Price MealPrice `json:"price"`
	Tags  []MealTag `json:"tags"`
}

// MealGroup is a category of meals (e.g. "Tagesgericht"). Meal order
// matches the page and reflects the venue's presentation order.
type MealGroup struct {
	Name  string `json:"name"`
	Meals []Meal `json:"meals"`
}

// MensaMenu is the full menu of one venue for one day. The date is the
// caller-supplied query date, not derived from the page. Group order
// matches the page.
type MensaMenu struct {
	Date   Date        `json:"date"`
	Groups []MealGroup `json:"groups"`
}

// Extraction errors. Any of these aborts the whole extraction; there is no
// partial-success mode.
var (
	ErrCategoryNameNotFound = &Error{Code: ENOTFOUND, Message: "could not find category name"}
	ErrMealNameNotFound     = &Error{Code: ENOTFOUND, Message: "could not find meal name"}
	ErrMealPriceNotFound    = &Error{Code: ENOTFOUND, Message: "could not find meal price"}
)

// PageFetcher retrieves the raw menu page HTML for a venue and date.
type PageFetcher interface {
	FetchPage(ctx context.Context, mensaID string, date Date) (html string, err error)
}

// MenuExtractor parses raw menu page HTML into a structured menu.
// Implementations must be stateless and safe for concurrent use.
type MenuExtractor interface {
	Extract(html string, date Date) (*MensaMenu, error)
}

// MenuService loads the structured menu for a venue and date.
type MenuService interface {
	Menu(ctx context.Context, mensaID string, date Date) (*MensaMenu, error)
}

// MenuLoader implements MenuService by fetching the menu page and running
// it through the extractor. Fetch errors propagate unwrapped; the caller
// translates them at the transport edge.
type MenuLoader struct {
	Fetcher   PageFetcher
	Extractor MenuExtractor
}

var _ MenuService = (*MenuLoader)(nil)

// Menu fetches and extracts the menu. An empty mensaID selects the default
// venue.
func (l *MenuLoader) Menu(ctx context.Context, mensaID string, date Date) (*MensaMenu, error) {
	if mensaID == "" {
		mensaID = DefaultMensaID
	}
	html, err := l.Fetcher.FetchPage(ctx, mensaID, date)
	if err != nil {
		return nil, err
	}
	return l.Extractor.Extract(html, date)
}

// MenuRecord is an extracted menu persisted for history queries.
type MenuRecord struct {
	ID          string     `json:"id"`
	MensaID     string     `json:"mensaId"`
	Date        Date       `json:"date"`
	ContentHash string     `json:"contentHash"`
	FetchedAt   time.Time  `json:"fetchedAt"`
	Menu        *MensaMenu `json:"menu"`
}

// Validate returns an error if the record contains invalid fields.
func (r *MenuRecord) Validate() error {
	if r.MensaID == "" {
		return Errorf(EINVALID, "menu record mensa ID required")
	}
	if r.Menu == nil {
		return Errorf(EINVALID, "menu record menu required")
	}
	if r.Date.IsZero() {
		return Errorf(EINVALID, "menu record date required")
	}
	return nil
}

// MenuFilter represents a filter for FindMenus.
type MenuFilter struct {
	MensaID *string `json:"mensaId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MenuStore persists extracted menus. Raw page HTML is never stored.
type MenuStore interface {
	// SaveMenu persists a record, assigning ID, ContentHash and FetchedAt.
	SaveMenu(ctx context.Context, rec *MenuRecord) error

	// FindMenuByDate retrieves the most recent record for a venue and date.
	// Returns ENOTFOUND if no record exists.
	FindMenuByDate(ctx context.Context, mensaID string, date Date) (*MenuRecord, error)

	// FindMenus retrieves records matching the filter, most recent first.
	FindMenus(ctx context.Context, filter MenuFilter) ([]*MenuRecord, error)
}
