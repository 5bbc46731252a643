package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

func testService(ttl time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{
		Secret:   []byte("test-secret"),
		TokenTTL: ttl,
	})
}

func testUser() models.User {
	return models.User{UserID: 1, Name: "Jane Doe", Email: "jane@farm.io", Role: models.RoleFarmer}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Subject != "jane@farm.io" {
		t.Errorf("subject = %q, want jane@farm.io", claims.Subject)
	}
	if claims.Role != "farmer" {
		t.Errorf("role = %q, want farmer", claims.Role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := testService(-time.Second)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() = %v, want ErrExpiredToken", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := testService(time.Hour)
	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := testService(time.Hour)
	verifier := NewTokenService(config.AuthConfig{Secret: []byte("other-secret"), TokenTTL: time.Hour})

	token, err := issuer.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := testService(time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error: %v", err)
	}
	config.DB = gdb
	t.Cleanup(func() { sqlDB.Close() })
	return mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "name", "email", "hashed_password", "role", "created_at"}).
		AddRow(1, "Jane Doe", "jane@farm.io", "$2a$10$hash", "farmer", time.Now())
}

func TestMiddlewareMissingHeader(t *testing.T) {
	svc := testService(time.Hour)
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/sensors/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
	if rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", rr.Header().Get("WWW-Authenticate"))
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	mock := mockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(userRows())

	svc := testService(time.Hour)
	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	reached := false
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if GetClaims(r) == nil {
			t.Error("claims missing from context")
		}
		if GetUser(r).Email != "jane@farm.io" {
			t.Errorf("user email = %q, want jane@farm.io", GetUser(r).Email)
		}
	}))

	req := httptest.NewRequest("GET", "/sensors/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !reached {
		t.Fatalf("handler not reached, status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestMiddlewareUnknownSubject(t *testing.T) {
	mock := mockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	svc := testService(time.Hour)
	token, err := svc.Generate(models.User{Email: "ghost@farm.io", Role: models.RoleFarmer})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/sensors/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}
