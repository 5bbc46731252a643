package models

import "gorm.io/datatypes"

type CropStatus string

const (
	CropPlanted         CropStatus = "planted"
	CropGrowing         CropStatus = "growing"
	CropReadyForHarvest CropStatus = "ready_for_harvest"
	CropHarvested       CropStatus = "harvested"
)

type CropManagement struct {
	CropID        uint            `gorm:"column:crop_id;primaryKey;autoIncrement" json:"crop_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	PlantingDate  datatypes.Date  `gorm:"not null" json:"planting_date"`
	HarvestDate   *datatypes.Date `json:"harvest_date"`
	ExpectedYield *float64        `json:"expected_yield"`
	Status        CropStatus      `gorm:"size:20;not null" json:"status"`
}

func (CropManagement) TableName() string { return "crop_management" }

// CropManagementCreate carries dates as plain YYYY-MM-DD strings; the
// handler converts them after validation.
type CropManagementCreate struct {
	Name          string   `json:"name" validate:"required,min=2,max=100,alpha_space"`
	PlantingDate  string   `json:"planting_date" validate:"required,datetime=2006-01-02"`
	HarvestDate   *string  `json:"harvest_date" validate:"omitempty,datetime=2006-01-02"`
	ExpectedYield *float64 `json:"expected_yield" validate:"omitempty,gte=0"`
	Status        string   `json:"status" validate:"required,oneof=planted growing ready_for_harvest harvested"`
}
