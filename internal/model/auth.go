package model

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User is a resolved session identity: a doctor record tagged with its
// role, or a patient identity synthesized from the login email.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse carries the resolved identity plus an access token.
// The identity fields stay at the top level to keep the original
// response shape; the token is additive.
type LoginResponse struct {
	User
	Token string `json:"token,omitempty"`
}
