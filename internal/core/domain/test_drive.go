package domain

import "time"

type TestDriveStatus string

const (
	TestDrivePending TestDriveStatus = "pending"
)

type TestDrive struct {
	ID            int64           `json:"id"`
	BikeID        int64           `json:"bikeId" validate:"required,gt=0"`
	Name          string          `json:"name" validate:"required,max=200"`
	Email         string          `json:"email" validate:"required,email,max=254"`
	Phone         string          `json:"phone" validate:"required,max=50"`
	PreferredDate string          `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	PreferredTime string          `json:"preferredTime" validate:"required,datetime=15:04"`
	Message       *string         `json:"message" validate:"omitempty,max=2000"`
	Status        TestDriveStatus `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
