package auth

// Field messages rendered back into the login and registration forms. The
// login message is deliberately identical for unknown emails and wrong
// passwords so responses never reveal whether an account exists.
const (
	MsgEmailRequired      = "Email is required"
	MsgPasswordRequired   = "Password is required"
	MsgEmailInvalid       = "Invalid email address"
	MsgPasswordTooShort   = "Password must be at least 6 characters long"
	MsgEmailTaken         = "A user already exists with this email address"
	MsgIncorrectEmailOrPw = "Incorrect email or password"
)

// ValidationErrors carries per-field messages for a failed attempt. An empty
// string means no message for that field; at most one message per field is
// ever set.
type ValidationErrors struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Any reports whether at least one field carries a message
func (v *ValidationErrors) Any() bool {
	return v != nil && (v.Email != "" || v.Password != "")
}

// Map renders the errors into a view context friendly map
func (v *ValidationErrors) Map() map[string]string {
	out := map[string]string{}
	if v == nil {
		return out
	}
	if v.Email != "" {
		out["email"] = v.Email
	}
	if v.Password != "" {
		out["password"] = v.Password
	}
	return out
}
