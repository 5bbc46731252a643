package models

import "time"

type WeatherData struct {
	WeatherID   uint      `gorm:"column:weather_id;primaryKey;autoIncrement" json:"weather_id"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	Humidity    float64   `gorm:"not null" json:"humidity"`
	Rainfall    float64   `gorm:"not null" json:"rainfall"`
	WindSpeed   float64   `gorm:"not null" json:"wind_speed"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (WeatherData) TableName() string { return "weather_data" }

type WeatherDataCreate struct {
	Temperature *float64 `json:"temperature" validate:"required,gte=-50,lte=60"`
	Humidity    *float64 `json:"humidity" validate:"required,gte=0,lte=100"`
	Rainfall    *float64 `json:"rainfall" validate:"required,gte=0"`
	WindSpeed   *float64 `json:"wind_speed" validate:"required,gte=0"`
}
