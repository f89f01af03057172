package entity

// User is an account keyed by an email address or a 10-digit phone number.
type User struct {
	Base
	Identifier   string   `db:"identifier"`
	PasswordHash string   `db:"password"`
	OldPasswords []string `db:"old_passwords"` // bcrypt hashes of previous passwords
	ResetOTP     *string  `db:"reset_otp"`
}
