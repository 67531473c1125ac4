package models

import (
	"strings"
	"time"
)

type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type SignUpRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
}

func (r SignUpRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "This field is required."
	} else if len(r.Username) > 150 {
		errs["username"] = "Ensure this field has no more than 150 characters."
	}

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "This field is required."
	} else if !strings.Contains(r.Email, "@") {
		errs["email"] = "Enter a valid email address."
	}

	if msg := checkPasswordStrength(r.Password); msg != "" {
		errs["password"] = msg
	} else if r.Password != r.Password2 {
		errs["password"] = "Password fields didn't match."
	}

	if len(r.Bio) > 500 {
		errs["bio"] = "Ensure this field has no more than 500 characters."
	}
	if len(r.Location) > 100 {
		errs["location"] = "Ensure this field has no more than 100 characters."
	}
	if len(r.PhoneNumber) > 15 {
		errs["phone_number"] = "Ensure this field has no more than 15 characters."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkPasswordStrength(password string) string {
	if password == "" {
		return "This field is required."
	}
	if len(password) < 8 {
		return "This password is too short. It must contain at least 8 characters."
	}
	allDigits := true
	for _, c := range password {
		if c < '0' || c > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "This password is entirely numeric."
	}
	return ""
}

// UpdateProfileRequest has pointer fields so a partial update leaves
// unset fields unchanged.
type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	PhoneNumber *string `json:"phone_number"`
}

func (r UpdateProfileRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if r.Username != nil {
		if strings.TrimSpace(*r.Username) == "" {
			errs["username"] = "This field may not be blank."
		} else if len(*r.Username) > 150 {
			errs["username"] = "Ensure this field has no more than 150 characters."
		}
	}
	if r.Email != nil {
		if strings.TrimSpace(*r.Email) == "" {
			errs["email"] = "This field may not be blank."
		} else if !strings.Contains(*r.Email, "@") {
			errs["email"] = "Enter a valid email address."
		}
	}
	if r.Bio != nil && len(*r.Bio) > 500 {
		errs["bio"] = "Ensure this field has no more than 500 characters."
	}
	if r.Location != nil && len(*r.Location) > 100 {
		errs["location"] = "Ensure this field has no more than 100 characters."
	}
	if r.PhoneNumber != nil && len(*r.PhoneNumber) > 15 {
		errs["phone_number"] = "Ensure this field has no more than 15 characters."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Tokens struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh,omitempty"`
}
