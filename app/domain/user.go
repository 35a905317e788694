package domain

// UserProfile is the customer profile as served by the accounts API.
type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	LoyaltyCard string `json:"loyalty_card"`
	IsStaff     bool   `json:"is_staff"`
}

// DisplayName returns the name shown on storefront surfaces.
func (p UserProfile) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	return p.Username
}

// LoginRequest carries web login input.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries customer registration input.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,max=150"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// ProfileUpdate carries editable profile fields. Empty fields are left
// untouched by the server.
type ProfileUpdate struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}
