package models

import "time"

// Roles a user can hold. Every new account starts as RoleUser.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account of the store.
type User struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role      string `json:"role" gorm:"type:varchar(20);default:user"`

	// LockoutEnd doubles as the deletion grace-period marker: a deletion
	// request sets it together with AccountDeletionRequested, and the sweeper
	// removes accounts whose window has elapsed with the flag still set.
	LockoutEnd               *time.Time `json:"lockout_end,omitempty"`
	AccountDeletionRequested bool       `json:"account_deletion_requested"`

	Cart            *Cart     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Orders          []Order   `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Reviews         []Review  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	ProductsForSale []Product `json:"-" gorm:"foreignKey:SellerID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the user's first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// LockedOutAt reports whether the account is locked out at the given time.
func (u *User) LockedOutAt(t time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(t)
}

// DeletionDueAt reports whether the account's grace period has elapsed with
// the deletion request still pending.
func (u *User) DeletionDueAt(t time.Time) bool {
	return u.AccountDeletionRequested && u.LockoutEnd != nil && u.LockoutEnd.Before(t)
}
