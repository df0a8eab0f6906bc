package database

import (
	"context"
	"fmt"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

type TestDriveRepository struct {
	store *Store
}

func NewTestDriveRepository(store *Store) *TestDriveRepository {
	return &TestDriveRepository{store: store}
}

func (r *TestDriveRepository) CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	query := `INSERT INTO test_drives (bike_id, name, email, phone, preferred_date, preferred_time, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	if td.Status == "" {
		td.Status = domain.TestDrivePending
	}
	td.CreatedAt = time.Now().UTC()

	id, err := r.store.RunReturningID(ctx, query,
		td.BikeID,
		td.Name,
		td.Email,
		td.Phone,
		td.PreferredDate,
		td.PreferredTime,
		td.Message,
		string(td.Status),
		td.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating test drive: %w", err)
	}
	td.ID = id
	return td, nil
}

func (r *TestDriveRepository) ListTestDrives(ctx context.Context) ([]*domain.TestDrive, error) {
	query := `SELECT id, bike_id, name, email, phone, preferred_date, preferred_time, message, status, created_at
		FROM test_drives ORDER BY id DESC`

	rows, err := r.store.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drives := []*domain.TestDrive{}
	for rows.Next() {
		td := &domain.TestDrive{}
		var status string
		err := rows.Scan(
			&td.ID,
			&td.BikeID,
			&td.Name,
			&td.Email,
			&td.Phone,
			&td.PreferredDate,
			&td.PreferredTime,
			&td.Message,
			&status,
			&td.CreatedAt,
		)
		if err != nil {
			return nil, unavailable("scan test drive", err)
		}
		td.Status = domain.TestDriveStatus(status)
		drives = append(drives, td)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable("list test drives", err)
	}
	return drives, nil
}
