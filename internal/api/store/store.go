// Package store is the persistence port of the reference goals server.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAccountExists   = errors.New("user already exists")
	ErrAccountNotFound = errors.New("user not found")
	ErrGoalNotFound    = errors.New("goal not found")
)

type Step struct {
	Title  string `bson:"title"`
	Status string `bson:"status"`
}

type Goal struct {
	ID        string    `bson:"id"`
	Title     string    `bson:"title"`
	Status    string    `bson:"status"`
	Steps     []Step    `bson:"steps"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Account is one registered user with their goals embedded.
type Account struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Username     string    `bson:"username"`
	Description  string    `bson:"description"`
	Goals        []Goal    `bson:"goals"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// ProfileUpdate carries the optional fields of a profile edit. Nil leaves the field unchanged.
type ProfileUpdate struct {
	Username    *string
	Description *string
}

// Store persists accounts. Emails are unique.
type Store interface {
	CreateAccount(ctx context.Context, a Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	AddGoal(ctx context.Context, userID string, g Goal) error
	SetGoalStatus(ctx context.Context, userID, goalID, status string, at time.Time) error
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate, at time.Time) (Account, error)
	Ping(ctx context.Context) error
}
