package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
	"p9e.in/agrimon/utils"
)

func GetAllSensorData(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	var readings []models.SensorData
	if err := config.DB.Offset(offset).Limit(limit).Find(&readings).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

func CreateSensorData(w http.ResponseWriter, r *http.Request) {
	var req models.SensorDataCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	reading := models.SensorData{
		SensorID:     req.SensorID,
		Temperature:  req.Temperature,
		Humidity:     req.Humidity,
		SoilMoisture: req.SoilMoisture,
		PHLevel:      req.PHLevel,
	}
	if err := config.DB.Create(&reading).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Sensor not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusCreated, reading)
}

func GetSensorData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor data id")
		return
	}
	var reading models.SensorData
	if err := config.DB.First(&reading, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Sensor data not found")
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

// GetSensorDataBySensor lists readings reported by one sensor.
func GetSensorDataBySensor(w http.ResponseWriter, r *http.Request) {
	sensorID, ok := pathUint(r, "sensor_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor id")
		return
	}
	offset, limit := pagination(r)
	var readings []models.SensorData
	if err := config.DB.Where("sensor_id = ?", sensorID).
		Offset(offset).Limit(limit).Find(&readings).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

func UpdateSensorData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor data id")
		return
	}
	var reading models.SensorData
	if err := config.DB.First(&reading, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "Sensor data not found")
		return
	}

	var req models.SensorDataCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.Validate(req); errs != nil {
		writeValidationError(w, errs)
		return
	}

	reading.SensorID = req.SensorID
	reading.Temperature = req.Temperature
	reading.Humidity = req.Humidity
	reading.SoilMoisture = req.SoilMoisture
	reading.PHLevel = req.PHLevel
	if err := config.DB.Save(&reading).Error; err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "Sensor not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

func DeleteSensorData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid sensor data id")
		return
	}
	result := config.DB.Delete(&models.SensorData{}, id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Sensor data not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sensor data deleted successfully"})
}

// SensorDataSummary returns a per-metric statistical summary of all
// stored readings, for the dashboard.
func SensorDataSummary(w http.ResponseWriter, r *http.Request) {
	var readings []models.SensorData
	if err := config.DB.Find(&readings).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	metrics := map[string][]float64{
		"temperature":   {},
		"humidity":      {},
		"soil_moisture": {},
		"ph_level":      {},
	}
	for _, rd := range readings {
		if rd.Temperature != nil {
			metrics["temperature"] = append(metrics["temperature"], *rd.Temperature)
		}
		if rd.Humidity != nil {
			metrics["humidity"] = append(metrics["humidity"], *rd.Humidity)
		}
		if rd.SoilMoisture != nil {
			metrics["soil_moisture"] = append(metrics["soil_moisture"], *rd.SoilMoisture)
		}
		if rd.PHLevel != nil {
			metrics["ph_level"] = append(metrics["ph_level"], *rd.PHLevel)
		}
	}

	summary := make(map[string]*utils.StatisticalSummary, len(metrics))
	for name, values := range metrics {
		summary[name] = utils.Summarize(values)
	}
	writeJSON(w, http.StatusOK, summary)
}

// ExportSensorData streams all readings as an Excel workbook.
func ExportSensorData(w http.ResponseWriter, r *http.Request) {
	var readings []models.SensorData
	if err := config.DB.Order("data_id").Find(&readings).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sensor Data"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Data ID", "Sensor ID", "Temperature", "Humidity", "Soil Moisture", "pH Level", "Timestamp"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, rd := range readings {
		values := []interface{}{
			rd.DataID,
			rd.SensorID,
			optionalCell(rd.Temperature),
			optionalCell(rd.Humidity),
			optionalCell(rd.SoilMoisture),
			optionalCell(rd.PHLevel),
			rd.Timestamp.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("sensor_data_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func optionalCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
