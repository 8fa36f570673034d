package user

import (
	"fmt"
	"time"

	"fanimal/internal/shared/authorization"

	vo "fanimal/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without
// persistence concerns). The Stripe customer ID is attached lazily on the
// user's first subscription and reused for every later one.
type User struct {
	id               uint
	username         *vo.Username
	email            *vo.Email
	name             *vo.Name
	passwordHash     string
	role             authorization.UserRole
	stripeCustomerID *string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewUser creates a new user aggregate with the default role.
func NewUser(username *vo.Username, email *vo.Email, name *vo.Name, passwordHash string) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserReconstructParams carries every persisted field needed to rebuild
// the aggregate from storage.
type UserReconstructParams struct {
	ID               uint
	Username         *vo.Username
	Email            *vo.Email
	Name             *vo.Name
	PasswordHash     string
	Role             authorization.UserRole
	StripeCustomerID *string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(p UserReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if p.Username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if p.Email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if p.Name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", p.Role)
	}

	return &User{
		id:               p.ID,
		username:         p.Username,
		email:            p.Email,
		name:             p.Name,
		passwordHash:     p.PasswordHash,
		role:             p.Role,
		stripeCustomerID: p.StripeCustomerID,
		version:          p.Version,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                 { return u.id }
func (u *User) Username() *vo.Username   { return u.username }
func (u *User) Email() *vo.Email         { return u.email }
func (u *User) Name() *vo.Name           { return u.name }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() authorization.UserRole {
	return u.role
}
func (u *User) StripeCustomerID() *string { return u.stripeCustomerID }
func (u *User) Version() int              { return u.version }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// PromoteToAdmin grants the admin role.
func (u *User) PromoteToAdmin() {
	if u.role.IsAdmin() {
		return
	}
	u.role = authorization.RoleAdmin
	u.touch()
}

// AttachStripeCustomer records the billing provider's customer ID after
// the first customer creation. A customer, once attached, is never
// replaced.
func (u *User) AttachStripeCustomer(customerID string) error {
	if customerID == "" {
		return fmt.Errorf("stripe customer ID cannot be empty")
	}
	if u.stripeCustomerID != nil {
		if *u.stripeCustomerID == customerID {
			return nil
		}
		return fmt.Errorf("stripe customer is already attached")
	}
	u.stripeCustomerID = &customerID
	u.touch()
	return nil
}

// UpdateName updates the user's name
func (u *User) UpdateName(newName *vo.Name) error {
	if newName == nil {
		return fmt.Errorf("name cannot be nil")
	}
	if u.name.Equals(newName) {
		return nil
	}
	u.name = newName
	u.touch()
	return nil
}

// ChangePasswordHash replaces the stored password hash.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
	u.version++
}
