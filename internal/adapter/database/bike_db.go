package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

const bikeColumns = `id, name, description, base_price, image_url, video_url, specifications, category, created_at`

type BikeRepository struct {
	store *Store
}

func NewBikeRepository(store *Store) *BikeRepository {
	return &BikeRepository{
		store,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (name, description, base_price, image_url, video_url, specifications, category, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	bike.CreatedAt = time.Now().UTC()
	id, err := r.store.RunReturningID(ctx, query,
		bike.Name,
		bike.Description,
		bike.BasePrice,
		bike.ImageURL,
		bike.VideoURL,
		bike.Specifications,
		bike.Category,
		bike.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating bike: %w", err)
	}
	bike.ID = id
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, id int64) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE id = ?`

	bike, err := scanBike(r.store.GetOne(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bike %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get bike", err)
	}
	return bike, nil
}

// ListBikes returns every bike, newest first.
func (r *BikeRepository) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes ORDER BY id DESC`

	rows, err := r.store.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bikes := []*domain.Bike{}
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, unavailable("scan bike", err)
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable("list bikes", err)
	}
	return bikes, nil
}

// UpdateBike overwrites every editable column; omitted optional fields are
// written as NULL. Updating a missing id is not an error.
func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) error {
	query := `UPDATE bikes
		SET
			name = ?,
			description = ?,
			base_price = ?,
			image_url = ?,
			video_url = ?,
			specifications = ?,
			category = ?
		WHERE id = ?`

	_, err := r.store.Exec(ctx, query,
		bike.Name,
		bike.Description,
		bike.BasePrice,
		bike.ImageURL,
		bike.VideoURL,
		bike.Specifications,
		bike.Category,
		bike.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating bike: %w", err)
	}
	return nil
}

// DeleteBike removes the row if present. Orders and bookings that reference
// it are kept.
func (r *BikeRepository) DeleteBike(ctx context.Context, id int64) error {
	query := `DELETE FROM bikes WHERE id = ?`

	if _, err := r.store.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting bike: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBike(row rowScanner) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.ID,
		&bike.Name,
		&bike.Description,
		&bike.BasePrice,
		&bike.ImageURL,
		&bike.VideoURL,
		&bike.Specifications,
		&bike.Category,
		&bike.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}
