package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllSensors(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var sensors []models.Sensor
	if err := config.DB.Offset(offset).Limit(limit).Find(&sensors).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, sensors)
}

func CreateSensor(w http.ResponseWriter, r *http.Request) {
	var req models.SensorCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	sensor := models.Sensor{
		Type:     models.SensorType(req.Type),
		Location: req.Location,
		Status:   models.SensorStatus(req.Status),
	}
	if err := config.DB.Create(&sensor).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, sensor)
}

func GetSensor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor id")
		return
	}
	var sensor models.Sensor
	if err := config.DB.First(&sensor, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Sensor not found")
		return
	}
	writeJSON(w, http.StatusOK, sensor)
}

func UpdateSensor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor id")
		return
	}
	var sensor models.Sensor
	if err := config.DB.First(&sensor, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Sensor not found")
		return
	}

	var req models.SensorCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	sensor.Type = models.SensorType(req.Type)
	sensor.Location = req.Location
	sensor.Status = models.SensorStatus(req.Status)
	if err := config.DB.Save(&sensor).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, sensor)
}

func DeleteSensor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor id")
		return
	}
	result := config.DB.Delete(&models.Sensor{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Sensor not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sensor deleted successfully"})
}
