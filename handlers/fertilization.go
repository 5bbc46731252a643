package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllFertilizationSystems(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var systems []models.FertilizationSystem
	if err := config.DB.Offset(offset).Limit(limit).Find(&systems).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, systems)
}

func CreateFertilizationSystem(w http.ResponseWriter, r *http.Request) {
	var req models.FertilizationSystemCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	system := models.FertilizationSystem{
		FarmID:       req.FarmID,
		Status:       models.FertilizationStatus(req.Status),
		NutrientType: req.NutrientType,
	}
	if err := config.DB.Create(&system).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, system)
}

func GetFertilizationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid fertilization system id")
		return
	}
	var system models.FertilizationSystem
	if err := config.DB.First(&system, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Fertilization system not found")
		return
	}
	writeJSON(w, http.StatusOK, system)
}

// GetFertilizationSystemsByFarm lists the systems installed on one farm.
func GetFertilizationSystemsByFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathUint(r, "farm_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid farm id")
		return
	}
	offset, limit := pagination(r)
	var systems []models.FertilizationSystem
	if err := config.DB.Where("farm_id = ?", farmID).
		Offset(offset).Limit(limit).Find(&systems).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, systems)
}

func UpdateFertilizationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid fertilization system id")
		return
	}
	var system models.FertilizationSystem
	if err := config.DB.First(&system, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Fertilization system not found")
		return
	}

	var req models.FertilizationSystemCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	system.FarmID = req.FarmID
	system.Status = models.FertilizationStatus(req.Status)
	system.NutrientType = req.NutrientType
	if err := config.DB.Save(&system).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, system)
}

func DeleteFertilizationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid fertilization system id")
		return
	}
	result := config.DB.Delete(&models.FertilizationSystem{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Fertilization system not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Fertilization system deleted successfully"})
}
