package model

// Doctor is static reference data; records never change once seeded.
type Doctor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`

	// PasswordHash, when set, enables credential verification on login.
	// Seed data leaves it empty, which skips the check.
	PasswordHash string `json:"-"`
}
