package entity

import "time"

// TokenPair is the result of a successful register, login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// ClientInfo carries request metadata recorded on a session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}
