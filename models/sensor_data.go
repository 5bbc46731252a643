package models

import "time"

// SensorData is one reading reported by a sensor. Every metric is
// independently optional; absent metrics stay NULL.
type SensorData struct {
	DataID       uint      `gorm:"column:data_id;primaryKey;autoIncrement" json:"data_id"`
	SensorID     uint      `gorm:"not null;index" json:"sensor_id"`
	Sensor       *Sensor   `gorm:"foreignKey:SensorID" json:"-"`
	Temperature  *float64  `json:"temperature"`
	Humidity     *float64  `json:"humidity"`
	SoilMoisture *float64  `json:"soil_moisture"`
	PHLevel      *float64  `gorm:"column:ph_level" json:"ph_level"`
	Timestamp    time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (SensorData) TableName() string { return "sensor_data" }

type SensorDataCreate struct {
	SensorID     uint     `json:"sensor_id" validate:"required,gt=0"`
	Temperature  *float64 `json:"temperature" validate:"omitempty,gte=-50,lte=60"`
	Humidity     *float64 `json:"humidity" validate:"omitempty,gte=0,lte=100"`
	SoilMoisture *float64 `json:"soil_moisture" validate:"omitempty,gte=0"`
	PHLevel      *float64 `json:"ph_level" validate:"omitempty,gte=0,lte=14"`
}
