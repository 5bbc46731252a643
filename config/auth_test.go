package config

import "testing"

func TestPasswordPolicyCheck(t *testing.T) {
	tests := []struct {
		name     string
		policy   PasswordPolicy
		password string
		problems int
	}{
		{"basic accepts eight chars", PasswordBasic, "password", 0},
		{"basic rejects short", PasswordBasic, "passwd", 1},
		{"basic ignores missing uppercase and digit", PasswordBasic, "alllowercase", 0},
		{"strong accepts mixed", PasswordStrong, "Secret123", 0},
		{"strong rejects missing uppercase", PasswordStrong, "secret123", 1},
		{"strong rejects missing digit", PasswordStrong, "Secretive", 1},
		{"strong rejects lowercase only", PasswordStrong, "secretive", 2},
		{"strong aggregates short and weak", PasswordStrong, "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.policy.Check(tt.password)
			if len(problems) != tt.problems {
				t.Errorf("Check(%q) = %v, expected %d problems", tt.password, problems, tt.problems)
			}
		})
	}
}
