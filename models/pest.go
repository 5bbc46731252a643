package models

import "time"

type PestDiseaseDetection struct {
	DetectionID       uint            `gorm:"column:detection_id;primaryKey;autoIncrement" json:"detection_id"`
	CropID            uint            `gorm:"not null;index" json:"crop_id"`
	Crop              *CropManagement `gorm:"foreignKey:CropID" json:"-"`
	SymptomDetected   string          `gorm:"size:255;not null" json:"symptom_detected"`
	Diagnosis         string          `gorm:"size:1000;not null" json:"diagnosis"`
	RecommendedAction string          `gorm:"size:1000;not null" json:"recommended_action"`
	Timestamp         time.Time       `gorm:"autoCreateTime" json:"timestamp"`
}

func (PestDiseaseDetection) TableName() string { return "pest_disease_detections" }

type PestDiseaseDetectionCreate struct {
	CropID            uint   `json:"crop_id" validate:"required,gt=0"`
	SymptomDetected   string `json:"symptom_detected" validate:"required,min=10,max=255,alnum_space"`
	Diagnosis         string `json:"diagnosis" validate:"required,min=10,max=1000,alnum_space"`
	RecommendedAction string `json:"recommended_action" validate:"required,min=10,max=1000,alnum_space"`
}
