package models

import "time"

type SensorType string

const (
	SensorTemperature  SensorType = "temperature"
	SensorHumidity     SensorType = "humidity"
	SensorSoilMoisture SensorType = "soil_moisture"
	SensorPH           SensorType = "pH"
)

type SensorStatus string

const (
	SensorActive   SensorStatus = "active"
	SensorInactive SensorStatus = "inactive"
	SensorFaulty   SensorStatus = "faulty"
)

type Sensor struct {
	SensorID    uint         `gorm:"column:sensor_id;primaryKey;autoIncrement" json:"sensor_id"`
	Type        SensorType   `gorm:"size:20;not null" json:"type"`
	Location    string       `gorm:"size:255;not null" json:"location"`
	Status      SensorStatus `gorm:"size:20;not null" json:"status"`
	LastUpdated time.Time    `gorm:"autoUpdateTime" json:"last_updated"`
}

func (Sensor) TableName() string { return "sensors" }

type SensorCreate struct {
	Type     string `json:"type" validate:"required,oneof=temperature humidity soil_moisture pH"`
	Location string `json:"location" validate:"required,min=3,max=255,alpha_space"`
	Status   string `json:"status" validate:"required,oneof=active inactive faulty"`
}
