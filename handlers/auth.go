package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/middleware"
	"p9e.in/agrimon/models"
)

// AuthHandler owns everything that touches passwords and tokens.
type AuthHandler struct {
	tokens *middleware.TokenService
	policy config.PasswordPolicy
}

func NewAuthHandler(tokens *middleware.TokenService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{tokens: tokens, policy: cfg.PasswordPolicy}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a user account and returns a confirmation message.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	user, ok := h.createUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": user.UserID,
	})
}

// CreateUser backs POST /users/ and returns the created record.
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.createUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// createUser validates, hashes and inserts. The plaintext password is
// never persisted or logged.
func (h *AuthHandler) createUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	var req models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}

	errs := models.Validate(req)
	for _, msg := range h.policy.Check(req.Password) {
		errs = append(errs, models.FieldError{Field: "password", Message: msg})
	}
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return nil, false
	}

	var existing models.User
	err := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return nil, false
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return nil, false
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hash),
		Role:           models.UserRole(req.Role),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// Race between the pre-check and the insert.
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &user, true
}

// Login accepts form-encoded username/password and returns a bearer token.
// Unknown email and wrong password produce the same response shape.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		loginFailed(w)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		loginFailed(w)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		writeError(w, http.StatusInternalServerError, "Could not create token")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func loginFailed(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Incorrect email or password")
}

// Profile returns the record of the user the token resolves to.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user.UserID == 0 {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
