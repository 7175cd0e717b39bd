package request

import (
	"net/url"
	"strings"
)

type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Address         string `json:"address" validate:"required"`
}

func (r *RegisterRequest) BindForm(form url.Values) {
	r.Username = form.Get("username")
	r.Password = form.Get("password")
	r.ConfirmPassword = form.Get("confirm_password")
	r.FirstName = form.Get("first_name")
	r.LastName = form.Get("last_name")
	r.Email = form.Get("email")
	r.Phone = form.Get("phone")
	r.Address = form.Get("address")
}

// Normalize trims profile fields so that whitespace-only values count as blank.
// Passwords are kept verbatim.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

// CreateAdminRequest is filled by the provisioning command.
type CreateAdminRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Address         string `json:"address" validate:"required"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) BindForm(form url.Values) {
	r.Email = form.Get("email")
	r.Password = form.Get("password")
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
