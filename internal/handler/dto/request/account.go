package request

import (
	"daycare-waitlist/internal/usecase/commands"
)

type RegisterClientRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

func (r *RegisterClientRequest) ToInput() commands.RegisterClientInput {
	return commands.RegisterClientInput{Email: r.Email, Password: r.Password, Name: r.Name}
}

type RegisterProviderRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location" binding:"required"`
}

func (r *RegisterProviderRequest) ToInput() commands.RegisterProviderInput {
	return commands.RegisterProviderInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Location: r.Location,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Kind     string `json:"kind" binding:"required,oneof=client provider"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password, Kind: r.Kind}
}
