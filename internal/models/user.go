package models

// User is a persisted account row. The password is stored and compared in
// plaintext; that is the documented behavior of this backend, not a
// recommendation.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (User) TableName() string {
	return "users"
}
