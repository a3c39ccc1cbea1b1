package models

// User is an account that can author and be assigned to assignments.
// Password is stored in clear text.
type User struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	Email    string  `gorm:"type:varchar(255);not null" json:"email"`
	Password string  `gorm:"type:varchar(255);not null" json:"password"`
	Phone    *string `gorm:"type:varchar(50)" json:"phone"`
}
