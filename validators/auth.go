package validators

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates a registration payload in place.
func Signup(in *SignupInput) map[string]string {
	errors := make(map[string]string)

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errors["name"] = "Name is required!"
	} else if len(in.Name) > 100 {
		errors["name"] = "Name must not exceed 100 characters!"
	}

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		errors["email"] = "Email is required!"
	} else if !emailRegex.MatchString(in.Email) {
		errors["email"] = "Invalid email address!"
	}

	if in.Password == "" {
		errors["password"] = "Password is required!"
	} else if len(in.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters long!"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// Login validates a login payload in place.
func Login(in *LoginInput) map[string]string {
	errors := make(map[string]string)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		errors["email"] = "Email is required!"
	}
	if in.Password == "" {
		errors["password"] = "Password is required!"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}
