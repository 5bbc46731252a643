package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllIrrigationSystems(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var systems []models.IrrigationSystem
	if err := config.DB.Offset(offset).Limit(limit).Find(&systems).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, systems)
}

func CreateIrrigationSystem(w http.ResponseWriter, r *http.Request) {
	var req models.IrrigationSystemCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	system := models.IrrigationSystem{
		FarmID:        req.FarmID,
		Status:        models.IrrigationStatus(req.Status),
		LastActivated: time.Now(),
		WaterUsage:    req.WaterUsage,
	}
	if err := config.DB.Create(&system).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, system)
}

func GetIrrigationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid irrigation system id")
		return
	}
	var system models.IrrigationSystem
	if err := config.DB.First(&system, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Irrigation system not found")
		return
	}
	writeJSON(w, http.StatusOK, system)
}

// GetIrrigationSystemsByFarm lists the systems installed on one farm.
func GetIrrigationSystemsByFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathUint(r, "farm_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid farm id")
		return
	}
	offset, limit := pagination(r)
	var systems []models.IrrigationSystem
	if err := config.DB.Where("farm_id = ?", farmID).
		Offset(offset).Limit(limit).Find(&systems).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, systems)
}

func UpdateIrrigationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid irrigation system id")
		return
	}
	var system models.IrrigationSystem
	if err := config.DB.First(&system, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Irrigation system not found")
		return
	}

	var req models.IrrigationSystemCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	// Switching a system on refreshes its activation time.
	if models.IrrigationStatus(req.Status) == models.IrrigationOn && system.Status == models.IrrigationOff {
		system.LastActivated = time.Now()
	}
	system.FarmID = req.FarmID
	system.Status = models.IrrigationStatus(req.Status)
	system.WaterUsage = req.WaterUsage
	if err := config.DB.Save(&system).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, system)
}

func DeleteIrrigationSystem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid irrigation system id")
		return
	}
	result := config.DB.Delete(&models.IrrigationSystem{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Irrigation system not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Irrigation system deleted successfully"})
}
