package users

import "regexp"

// Deliberately permissive, the directory does the authoritative validation.
// This only rejects values without an @ separating non-trivial parts.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type CreateUserRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	RecoveryEmail string `json:"recovery_email"`
	IsTestUser    bool   `json:"is_test_user"`
}

// Validate collects every violated rule rather than failing on the first.
func (r CreateUserRequest) Validate() map[string]string {
	violations := map[string]string{}

	if r.FirstName == "" {
		violations["first_name"] = "first name is required"
	}
	if r.LastName == "" {
		violations["last_name"] = "last name is required"
	}
	if r.RecoveryEmail == "" {
		violations["recovery_email"] = "recovery email is required"
	} else if !IsValidEmail(r.RecoveryEmail) {
		violations["recovery_email"] = "recovery email must be a valid email address"
	}

	return violations
}

type UpdateUserAccountRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ContactEmail string `json:"contact_email,omitempty"`
}

func (r UpdateUserAccountRequest) Validate() map[string]string {
	violations := map[string]string{}

	if r.FirstName == "" {
		violations["first_name"] = "first name is required"
	}
	if r.LastName == "" {
		violations["last_name"] = "last name is required"
	}

	return violations
}

type AddUserToGroupRequest struct {
	UserID    string `json:"user_id"`
	GroupName string `json:"group_name"`
}

func (r AddUserToGroupRequest) Validate() map[string]string {
	violations := map[string]string{}

	if r.UserID == "" {
		violations["user_id"] = "user id is required"
	}
	if r.GroupName == "" {
		violations["group_name"] = "group name is required"
	}

	return violations
}
