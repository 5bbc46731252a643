package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/datatypes"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllCrops(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var crops []models.CropManagement
	if err := config.DB.Offset(offset).Limit(limit).Find(&crops).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, crops)
}

// parseDate converts a validated YYYY-MM-DD payload string.
func parseDate(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
}

func cropFromPayload(req models.CropManagementCreate) models.CropManagement {
	crop := models.CropManagement{
		Name:          req.Name,
		PlantingDate:  parseDate(req.PlantingDate),
		ExpectedYield: req.ExpectedYield,
		Status:        models.CropStatus(req.Status),
	}
	if req.HarvestDate != nil {
		d := parseDate(*req.HarvestDate)
		crop.HarvestDate = &d
	}
	return crop
}

func CreateCrop(w http.ResponseWriter, r *http.Request) {
	var req models.CropManagementCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	crop := cropFromPayload(req)
	if err := config.DB.Create(&crop).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, crop)
}

func GetCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid crop id")
		return
	}
	var crop models.CropManagement
	if err := config.DB.First(&crop, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Crop not found")
		return
	}
	writeJSON(w, http.StatusOK, crop)
}

func UpdateCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid crop id")
		return
	}
	var crop models.CropManagement
	if err := config.DB.First(&crop, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Crop not found")
		return
	}

	var req models.CropManagementCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	replacement := cropFromPayload(req)
	crop.Name = replacement.Name
	crop.PlantingDate = replacement.PlantingDate
	crop.HarvestDate = replacement.HarvestDate
	crop.ExpectedYield = replacement.ExpectedYield
	crop.Status = replacement.Status
	if err := config.DB.Save(&crop).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, crop)
}

func DeleteCrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid crop id")
		return
	}
	result := config.DB.Delete(&models.CropManagement{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Crop not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Crop deleted successfully"})
}
