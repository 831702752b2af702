// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq is the body of POST /register.
type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Username    string `json:"username" binding:"omitempty,max=150"`
}

// LoginReq is the body of POST /login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshReq carries a refresh token for /token/refresh and /logout.
type RefreshReq struct {
	Refresh string `json:"refresh" binding:"required,len=64,hexadecimal"`
}
