package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/agrimon/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250614_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Sensor{},
					&models.SensorData{},
					&models.IrrigationSystem{},
					&models.WeatherData{},
					&models.CropManagement{},
					&models.FertilizationSystem{},
					&models.PestDiseaseDetection{},
					&models.SupplyChainTransaction{},
				)
			},
		},
	})
	return m.Migrate()
}
