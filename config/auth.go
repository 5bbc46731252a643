package config

import (
	"os"
	"strconv"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
)

// PasswordPolicy selects which password-strength rule Register enforces.
type PasswordPolicy string

const (
	// PasswordBasic requires only a minimum length of 8 characters.
	PasswordBasic PasswordPolicy = "basic"
	// PasswordStrong additionally requires an uppercase letter and a digit.
	PasswordStrong PasswordPolicy = "strong"
)

// Check returns one message per violated rule, empty when the password
// satisfies the policy.
func (p PasswordPolicy) Check(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "Password must be at least 8 characters")
	}
	if p == PasswordStrong {
		hasUpper, hasDigit := false, false
		for _, c := range password {
			if unicode.IsUpper(c) {
				hasUpper = true
			}
			if unicode.IsDigit(c) {
				hasDigit = true
			}
		}
		if !hasUpper {
			problems = append(problems, "Password must contain at least one uppercase letter")
		}
		if !hasDigit {
			problems = append(problems, "Password must contain at least one digit")
		}
	}
	return problems
}

// AuthConfig carries everything the authentication layer needs. It is
// assembled once at startup and handed to the token service and auth
// handlers; nothing reads JWT_SECRET at request time.
type AuthConfig struct {
	Secret         []byte
	TokenTTL       time.Duration
	PasswordPolicy PasswordPolicy
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	ttl := 60 * time.Minute
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			logrus.WithField("value", v).Fatal("TOKEN_TTL_MINUTES must be a positive integer")
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	policy := PasswordStrong
	switch os.Getenv("PASSWORD_POLICY") {
	case "", "strong":
	case "basic":
		policy = PasswordBasic
	default:
		logrus.WithField("value", os.Getenv("PASSWORD_POLICY")).Fatal("PASSWORD_POLICY must be basic or strong")
	}

	return AuthConfig{
		Secret:         []byte(secret),
		TokenTTL:       ttl,
		PasswordPolicy: policy,
	}
}
