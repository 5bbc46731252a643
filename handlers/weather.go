package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllWeatherData(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var records []models.WeatherData
	if err := config.DB.Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func CreateWeatherData(w http.ResponseWriter, r *http.Request) {
	var req models.WeatherDataCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	record := models.WeatherData{
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Rainfall:    *req.Rainfall,
		WindSpeed:   *req.WindSpeed,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func GetWeatherData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid weather data id")
		return
	}
	var record models.WeatherData
	if err := config.DB.First(&record, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Weather data not found")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func UpdateWeatherData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid weather data id")
		return
	}
	var record models.WeatherData
	if err := config.DB.First(&record, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Weather data not found")
		return
	}

	var req models.WeatherDataCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	record.Temperature = *req.Temperature
	record.Humidity = *req.Humidity
	record.Rainfall = *req.Rainfall
	record.WindSpeed = *req.WindSpeed
	if err := config.DB.Save(&record).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func DeleteWeatherData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid weather data id")
		return
	}
	result := config.DB.Delete(&models.WeatherData{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Weather data not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Weather data deleted successfully"})
}
