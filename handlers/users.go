package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var users []models.User
	if err := config.DB.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUser replaces the whole record; every field of the payload is
// assigned by name. Password changes go through a different path.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var req models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	if req.Email != user.Email {
		var other models.User
		err := config.DB.Where("email = ?", req.Email).First(&other).Error
		if err == nil {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = models.UserRole(req.Role)
	if err := config.DB.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	result := config.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
