package user

// PasswordHasher abstracts password hashing for the domain layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}
