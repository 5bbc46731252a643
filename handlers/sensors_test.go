package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"p9e.in/agrimon/models"
)

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestCreateSensor(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "sensors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"sensor_id"}).AddRow(3))

	body := `{"type":"soil_moisture","location":"East Paddock","status":"active"}`
	req := httptest.NewRequest("POST", "/sensors/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	CreateSensor(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var sensor models.Sensor
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sensor))
	assert.Equal(t, uint(3), sensor.SensorID)
	assert.Equal(t, models.SensorType("soil_moisture"), sensor.Type)
}

func TestCreateSensorRejectsUnknownType(t *testing.T) {
	newMockDB(t)

	body := `{"type":"pressure","location":"East Paddock","status":"active"}`
	req := httptest.NewRequest("POST", "/sensors/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	CreateSensor(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "type")
}

func TestGetSensorNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sensors"`)).
		WillReturnError(gorm.ErrRecordNotFound)

	req := withID(httptest.NewRequest("GET", "/sensors/42", nil), "42")
	rr := httptest.NewRecorder()
	GetSensor(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sensor not found")
}

func TestGetSensorFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sensors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"sensor_id", "type", "location", "status"}).
			AddRow(5, "pH", "North Field", "active"))

	req := withID(httptest.NewRequest("GET", "/sensors/5", nil), "5")
	rr := httptest.NewRecorder()
	GetSensor(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var sensor models.Sensor
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sensor))
	assert.Equal(t, uint(5), sensor.SensorID)
	assert.Equal(t, "North Field", sensor.Location)
}

func TestDeleteSensorNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sensors"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := withID(httptest.NewRequest("DELETE", "/sensors/42", nil), "42")
	rr := httptest.NewRecorder()
	DeleteSensor(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sensor not found")
}

func TestDeleteSensor(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sensors"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := withID(httptest.NewRequest("DELETE", "/sensors/5", nil), "5")
	rr := httptest.NewRecorder()
	DeleteSensor(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sensor deleted successfully")
}

func TestPagination(t *testing.T) {
	tests := []struct {
		query  string
		offset int
		limit  int
	}{
		{"", 0, 100},
		{"?skip=20&limit=10", 20, 10},
		{"?skip=-5&limit=0", 0, 100},
		{"?skip=abc&limit=xyz", 0, 100},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/sensors/"+tt.query, nil)
		offset, limit := pagination(req)
		assert.Equal(t, tt.offset, offset, "query %q", tt.query)
		assert.Equal(t, tt.limit, limit, "query %q", tt.query)
	}
}
