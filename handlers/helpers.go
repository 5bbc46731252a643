package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"p9e.in/agrimon/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the standard error body: {"detail": <message>}.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeValidationError reports every offending field in one response.
func writeValidationError(w http.ResponseWriter, errs models.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": errs})
}

// pathID parses the {id} route variable into a positive integer.
func pathID(r *http.Request) (uint, bool) {
	return pathUint(r, "id")
}

func pathUint(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pagination reads skip/limit query params, defaulting to 0/100.
func pagination(r *http.Request) (offset, limit int) {
	offset, limit = 0, 100
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		offset = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return offset, limit
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgError(err, pgerrcode.UniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPgError(err, pgerrcode.ForeignKeyViolation)
}
