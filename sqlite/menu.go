package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pwalkow/mensa"
)

// Compile-time interface verification.
var _ mensa.MenuStore = (*MenuStore)(nil)

// MenuStore implements mensa.MenuStore using SQLite. Menu groups are
// stored as a JSON column; the raw page HTML is never stored.
type MenuStore struct {
	db *DB
}

// NewMenuStore creates a new MenuStore.
func NewMenuStore(db *DB) *MenuStore {
	return &MenuStore{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// SaveMenu persists a menu record, assigning ID, ContentHash and FetchedAt.
func (s *MenuStore) SaveMenu(ctx context.Context, rec *mensa.MenuRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	groups, err := json.Marshal(rec.Menu.Groups)
	if err != nil {
		return mensa.Errorf(mensa.EINTERNAL, "failed to encode menu groups: %v", err)
	}

	rec.ID = uuid.New().String()
	rec.FetchedAt = time.Now().UTC()
	rec.ContentHash = hashContent(string(groups))

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO menus (id, mensa_id, date, groups_json, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.MensaID, rec.Date.String(), string(groups), rec.ContentHash,
		rec.FetchedAt.Format(time.RFC3339))

	return err
}

// FindMenuByDate retrieves the most recent record for a venue and date.
func (s *MenuStore) FindMenuByDate(ctx context.Context, mensaID string, date mensa.Date) (*mensa.MenuRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, mensa_id, date, groups_json, content_hash, fetched_at
		FROM menus
		WHERE mensa_id = ? AND date = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, mensaID, date.String())

	rec, err := scanMenuRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, mensa.Errorf(mensa.ENOTFOUND, "no menu recorded for mensa %s on %s", mensaID, date)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindMenus retrieves records matching the filter, most recent first.
func (s *MenuStore) FindMenus(ctx context.Context, filter mensa.MenuFilter) ([]*mensa.MenuRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, mensa_id, date, groups_json, content_hash, fetched_at FROM menus WHERE 1=1")

	if filter.MensaID != nil {
		query.WriteString(" AND mensa_id = ?")
		args = append(args, *filter.MensaID)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*mensa.MenuRecord{}
	for rows.Next() {
		rec, err := scanMenuRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// scanMenuRecord reads one menus row via the given scan function and
// rebuilds the domain record from its serialized columns.
func scanMenuRecord(scan func(dest ...any) error) (*mensa.MenuRecord, error) {
	var rec mensa.MenuRecord
	var date, groupsJSON, fetchedAt string

	if err := scan(&rec.ID, &rec.MensaID, &date, &groupsJSON, &rec.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	parsedDate, err := mensa.ParseDate(date)
	if err != nil {
		return nil, err
	}
	rec.Date = parsedDate

	rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	var groups []mensa.MealGroup
	if err := json.Unmarshal([]byte(groupsJSON), &groups); err != nil {
		return nil, mensa.Errorf(mensa.EINTERNAL, "failed to decode menu groups: %v", err)
	}
	rec.Menu = &mensa.MensaMenu{Date: rec.Date, Groups: groups}

	return &rec, nil
}
