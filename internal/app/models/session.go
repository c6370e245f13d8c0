package models

// LoginSession is the payload held in Redis under the JWT session id. It is
// written by the auth service of the platform; this service only reads it.
type LoginSession struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
