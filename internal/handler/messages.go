package handlers

// API response messages
const (
	RegisterSuccess = "Registered Successfully"
	LoginSuccess    = "Logged In Successfully"
	LogoutSuccess   = "Logged Out Successfully"
	PostedSuccess   = "Posted Successfully"

	EmailNotUnique     = "email not unique"
	UsernameNotUnique  = "username not unique"
	InvalidCredentials = "Invalid email or password."
	TokenInvalid       = "Token is invalid or expired"
	TokenBlacklisted   = "Token is blacklisted"
	PostNotFound       = "Post not found"
)
