package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// lookup describes a reference table mapping local ids to AppNexus ids.
type lookup struct {
	table  string
	column string
}

var (
	countries        = lookup{table: "countries", column: "app_nexus_country_id"}
	regions          = lookup{table: "states", column: "app_nexus_state_id"}
	demographicAreas = lookup{table: "demographics", column: "app_nexus_demographic_area_id"}
	cities           = lookup{table: "cities", column: "app_nexus_city_id"}
	categories       = lookup{table: "categories", column: "app_nexus_category_id"}
	segments         = lookup{table: "segments", column: "app_nexus_segment_id"}
	conversionPixels = lookup{table: "conversion_pixels", column: "app_nexus_pixel_id"}
)

// LookupStore resolves local reference ids into AppNexus ids. Unknown ids
// and rows without an AppNexus id are skipped.
type LookupStore struct {
	db *sqlx.DB
}

func NewLookupStore(db *sqlx.DB) *LookupStore {
	return &LookupStore{db: db}
}

func (s *LookupStore) CountryIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return s.remoteIDs(ctx, countries, ids)
}

func (s *LookupStore) RegionIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return s.remoteIDs(ctx, regions, ids)
}

func (s *LookupStore) DMAIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return s.remoteIDs(ctx, demographicAreas, ids)
}

func (s *LookupStore) CityIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return s.remoteIDs(ctx, cities, ids)
}

func (s *LookupStore) CategoryCodes(ctx context.Context, ids []int64) (map[int64]int64, error) {
	return s.codes(ctx, categories, ids)
}

func (s *LookupStore) SegmentCodes(ctx context.Context, ids []int64) (map[int64]int64, error) {
	return s.codes(ctx, segments, ids)
}

// ConversionPixel returns the AppNexus id of a conversion pixel, or nil when
// the pixel is unknown or was never synced.
func (s *LookupStore) ConversionPixel(ctx context.Context, id int64) (*int64, error) {
	query := s.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, conversionPixels.column, conversionPixels.table))

	var remote sql.NullInt64
	err := sqlx.GetContext(ctx, s.db, &remote, query, id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !remote.Valid) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &remote.Int64, nil
}

func (s *LookupStore) remoteIDs(ctx context.Context, l lookup, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT %[1]s FROM %[2]s WHERE id IN (?) AND %[1]s IS NOT NULL ORDER BY id`,
		l.column, l.table,
	), ids)
	if err != nil {
		return nil, fmt.Errorf("build %s lookup: %w", l.table, err)
	}

	var result []int64
	if err := sqlx.SelectContext(ctx, s.db, &result, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", l.table, err)
	}
	return result, nil
}

func (s *LookupStore) codes(ctx context.Context, l lookup, ids []int64) (map[int64]int64, error) {
	result := make(map[int64]int64)
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT id, %[1]s FROM %[2]s WHERE id IN (?) AND %[1]s IS NOT NULL`,
		l.column, l.table,
	), ids)
	if err != nil {
		return nil, fmt.Errorf("build %s lookup: %w", l.table, err)
	}

	rows, err := s.db.QueryContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", l.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, code int64
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		result[id] = code
	}

	return result, rows.Err()
}
