// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoogleSubject string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email         string    `gorm:"type:varchar(255);index;not null"`
	DisplayName   string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:            m.ID,
		GoogleSubject: m.GoogleSubject,
		Email:         m.Email,
		DisplayName:   m.DisplayName,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		GoogleSubject: user.GoogleSubject,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
