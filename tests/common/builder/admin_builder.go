//go:build unit || e2e

package builder

import (
	reqdto "wedding-rsvp/internal/handler/dto/request"
)

const AdminTestPassword = "correct horse battery staple"

type AdminLoginBuilder struct {
	Password string
}

func NewAdminLoginBuilder() *AdminLoginBuilder {
	return &AdminLoginBuilder{
		Password: AdminTestPassword,
	}
}

func (a *AdminLoginBuilder) BuildDTO() reqdto.AdminLoginRequest {
	return reqdto.AdminLoginRequest{
		Password: a.Password,
	}
}

func (a *AdminLoginBuilder) WithPassword(password string) *AdminLoginBuilder {
	a.Password = password
	return a
}
