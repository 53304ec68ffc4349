package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/campus-housing-service/internal/domain"
	"github.com/campus-housing-service/internal/domain/repository"
	"github.com/campus-housing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type listingRepository struct {
	db *DB
}

// NewListingRepository создает Postgres-репозиторий объявлений
func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// listingRow maps the listings table. fallback_minutes is a JSONB object of
// campus id -> minutes so adding a campus does not need a migration.
type listingRow struct {
	ID                  string   `db:"id"`
	Address             string   `db:"address"`
	AreaName            string   `db:"area_name"`
	Rent                int      `db:"rent"`
	SafetyScore         float64  `db:"safety_score"`
	SafetyLabel         string   `db:"safety_label"`
	ReliabilityScore    float64  `db:"reliability_score"`
	FrequencySummary    string   `db:"frequency_summary"`
	PrimaryRouteSummary string   `db:"primary_route_summary"`
	FallbackMinutes     []byte   `db:"fallback_minutes"`
	Lat                 *float64 `db:"lat"`
	Lng                 *float64 `db:"lng"`
}

const listingColumns = `
	id, address, area_name, rent,
	safety_score, safety_label, reliability_score,
	frequency_summary, primary_route_summary,
	fallback_minutes, lat, lng`

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT` + listingColumns + `
		FROM listings
		WHERE id = $1`

	var row listingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrListingNotFound
		}
		r.db.logger.Error("Failed to get listing", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}

	return rowToListing(&row)
}

func (r *listingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT` + listingColumns + `
		FROM listings
		ORDER BY id`

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.db.logger.Error("Failed to list listings", zap.Error(err))
		return nil, fmt.Errorf("list listings: %w", err)
	}

	listings := make([]*domain.Listing, 0, len(rows))
	for i := range rows {
		listing, err := rowToListing(&rows[i])
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func rowToListing(row *listingRow) (*domain.Listing, error) {
	fallback := make(map[string]int)
	if len(row.FallbackMinutes) > 0 {
		if err := json.Unmarshal(row.FallbackMinutes, &fallback); err != nil {
			return nil, fmt.Errorf("unmarshal fallback minutes for %s: %w", row.ID, err)
		}
	}

	listing := &domain.Listing{
		ID:                  row.ID,
		Address:             row.Address,
		AreaName:            row.AreaName,
		Rent:                row.Rent,
		SafetyScore:         row.SafetyScore,
		SafetyLabel:         row.SafetyLabel,
		ReliabilityScore:    row.ReliabilityScore,
		FrequencySummary:    row.FrequencySummary,
		PrimaryRouteSummary: row.PrimaryRouteSummary,
		FallbackMinutes:     fallback,
	}

	if row.Lat != nil && row.Lng != nil {
		listing.Coordinate = &domain.Coordinate{Lat: *row.Lat, Lng: *row.Lng}
	}

	return listing, nil
}
