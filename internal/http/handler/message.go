package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgWelcome          = "Welcome to the Sample App!"
	msgInvalidLogin     = "Invalid email/password combination"
	msgPleaseSignIn     = "Please sign in."
	msgProfileUpdated   = "Profile updated"
	msgUserDeleted      = "User deleted"
	msgMicropostCreated = "Micropost created!"
	msgMicropostDeleted = "Micropost deleted"
	msgEmailTaken       = "Email has already been taken"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}
