package domain

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LoginID  string    `gorm:"uniqueIndex;not null;column:login_id" json:"login_id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string    `gorm:"not null;column:password" json:"-"`
	Name     string    `gorm:"column:name" json:"name"`
	Age      int       `gorm:"column:age" json:"age"`
	Address  string    `gorm:"column:address" json:"address"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Member) TableName() string { return "member" }

// NewMember assigns the id up front so the member and its cart can be
// created inside the same transaction.
func NewMember(loginID, email, hashedPassword, name string) *Member {
	return &Member{
		ID:       uuid.New(),
		LoginID:  loginID,
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}
}
