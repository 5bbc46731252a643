package models

import "time"

type IrrigationStatus string

const (
	IrrigationOn  IrrigationStatus = "on"
	IrrigationOff IrrigationStatus = "off"
)

type IrrigationSystem struct {
	IrrigationID  uint             `gorm:"column:irrigation_id;primaryKey;autoIncrement" json:"irrigation_id"`
	FarmID        uint             `gorm:"not null;index" json:"farm_id"`
	Status        IrrigationStatus `gorm:"size:10;not null" json:"status"`
	LastActivated time.Time        `json:"last_activated"`
	WaterUsage    float64          `gorm:"default:0" json:"water_usage"`
}

func (IrrigationSystem) TableName() string { return "irrigation_systems" }

type IrrigationSystemCreate struct {
	FarmID     uint    `json:"farm_id" validate:"required,gt=0"`
	Status     string  `json:"status" validate:"required,oneof=on off"`
	WaterUsage float64 `json:"water_usage" validate:"gte=0"`
}
