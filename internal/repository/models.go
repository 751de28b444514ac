package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Post struct {
	ID        uint    `gorm:"primaryKey"`          // monotonically assigned
	Title     string  `gorm:"size:200;not null"`
	Author    string  `gorm:"size:100;not null"`   // display name, independent of username
	OwnerID   *string `gorm:"index"`               // nullable, legacy posts have no owner
	Owner     *User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"` // deleting a user orphans their posts
	Content   string  `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// PostChanges carries a partial update; nil fields are left unchanged.
type PostChanges struct {
	Title   *string
	Author  *string
	Content *string
}
