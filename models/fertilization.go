package models

import "time"

type FertilizationStatus string

const (
	FertilizationActive      FertilizationStatus = "active"
	FertilizationInactive    FertilizationStatus = "inactive"
	FertilizationMaintenance FertilizationStatus = "maintenance"
)

type FertilizationSystem struct {
	FertilizationID uint                `gorm:"column:fertilization_id;primaryKey;autoIncrement" json:"fertilization_id"`
	FarmID          uint                `gorm:"not null;index" json:"farm_id"`
	Status          FertilizationStatus `gorm:"size:20;not null" json:"status"`
	LastFertilized  time.Time           `gorm:"autoCreateTime" json:"last_fertilized"`
	NutrientType    string              `gorm:"size:255;not null" json:"nutrient_type"`
}

func (FertilizationSystem) TableName() string { return "fertilization_systems" }

type FertilizationSystemCreate struct {
	FarmID       uint   `json:"farm_id" validate:"required,gt=0"`
	Status       string `json:"status" validate:"required,oneof=active inactive maintenance"`
	NutrientType string `json:"nutrient_type" validate:"required,min=2,max=100,alnum_space"`
}
