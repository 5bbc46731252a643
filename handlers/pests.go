package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllPestDetections(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var detections []models.PestDiseaseDetection
	if err := config.DB.Offset(offset).Limit(limit).Find(&detections).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, detections)
}

func CreatePestDetection(w http.ResponseWriter, r *http.Request) {
	var req models.PestDiseaseDetectionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	detection := models.PestDiseaseDetection{
		CropID:            req.CropID,
		SymptomDetected:   req.SymptomDetected,
		Diagnosis:         req.Diagnosis,
		RecommendedAction: req.RecommendedAction,
	}
	if err := config.DB.Create(&detection).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Crop not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, detection)
}

func GetPestDetection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid detection id")
		return
	}
	var detection models.PestDiseaseDetection
	if err := config.DB.First(&detection, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Pest detection not found")
		return
	}
	writeJSON(w, http.StatusOK, detection)
}

// GetPestDetectionsByCrop lists detections recorded for one crop.
func GetPestDetectionsByCrop(w http.ResponseWriter, r *http.Request) {
	cropID, ok := pathUint(r, "crop_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid crop id")
		return
	}
	offset, limit := pagination(r)
	var detections []models.PestDiseaseDetection
	if err := config.DB.Where("crop_id = ?", cropID).
		Offset(offset).Limit(limit).Find(&detections).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, detections)
}

func UpdatePestDetection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid detection id")
		return
	}
	var detection models.PestDiseaseDetection
	if err := config.DB.First(&detection, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Pest detection not found")
		return
	}

	var req models.PestDiseaseDetectionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	detection.CropID = req.CropID
	detection.SymptomDetected = req.SymptomDetected
	detection.Diagnosis = req.Diagnosis
	detection.RecommendedAction = req.RecommendedAction
	if err := config.DB.Save(&detection).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Crop not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, detection)
}

func DeletePestDetection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid detection id")
		return
	}
	result := config.DB.Delete(&models.PestDiseaseDetection{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Pest detection not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Pest detection deleted successfully"})
}
