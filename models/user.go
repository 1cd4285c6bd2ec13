package models

// User is an account of the card-game companion application.
//
// Username and Email are each unique. Username cannot be changed after the
// account is created. Password is stored exactly as provided.
type User struct {
	// ID is assigned by storage on creation. Zero means "not persisted yet".
	ID int64 `json:"id"`

	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	// Password is omitted from JSON responses once cleared with
	// [User.WithoutPassword].
	Password string `json:"password,omitempty"`
}

// WithoutPassword returns a copy of u with the password cleared. It is used
// for every user written back to an HTTP client.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// TableName returns the name of the database table that stores users.
func (u User) TableName() string {
	return "app_users"
}
