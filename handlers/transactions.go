package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var transactions []models.SupplyChainTransaction
	if err := config.DB.Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.SupplyChainTransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	tx := models.SupplyChainTransaction{
		CropID:          req.CropID,
		TransactionType: models.TransactionType(req.TransactionType),
		Quantity:        req.Quantity,
		Price:           req.Price,
		FromLocation:    req.FromLocation,
		ToLocation:      req.ToLocation,
		BlockchainHash:  req.BlockchainHash,
		Status:          req.Status,
	}
	if err := config.DB.Create(&tx).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Crop not found")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Blockchain hash already recorded")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	var tx models.SupplyChainTransaction
	if err := config.DB.First(&tx, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// GetTransactionsByCrop lists supply-chain movements of one crop.
func GetTransactionsByCrop(w http.ResponseWriter, r *http.Request) {
	cropID, ok := pathUint(r, "crop_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid crop id")
		return
	}
	offset, limit := pagination(r)
	var transactions []models.SupplyChainTransaction
	if err := config.DB.Where("crop_id = ?", cropID).
		Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	var tx models.SupplyChainTransaction
	if err := config.DB.First(&tx, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var req models.SupplyChainTransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	tx.CropID = req.CropID
	tx.TransactionType = models.TransactionType(req.TransactionType)
	tx.Quantity = req.Quantity
	tx.Price = req.Price
	tx.FromLocation = req.FromLocation
	tx.ToLocation = req.ToLocation
	tx.BlockchainHash = req.BlockchainHash
	tx.Status = req.Status
	if err := config.DB.Save(&tx).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Crop not found")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Blockchain hash already recorded")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	result := config.DB.Delete(&models.SupplyChainTransaction{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
