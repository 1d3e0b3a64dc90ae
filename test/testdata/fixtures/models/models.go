// Package models is a fixture tree exercising the shapes the generator
// classifies: enums from const groups, embedded bases, generics, collections,
// pointers, and the well-known scalar types.
package models

import (
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusClosed
)

type Audited struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type Named interface {
	DisplayName() string
}

type Account struct {
	Audited
	Name     string         `json:"name"`
	Status   Status         `json:"status"`
	Balance  *float64       `json:"balance,omitempty"`
	Tags     []string       `json:"tags"`
	Attrs    map[string]int `json:"attrs"`
	Owner    *User          `json:"owner,omitempty"`
	Internal string         `ts:"-"`
}

type User struct {
	Audited
	Email    string     `json:"email"`
	Accounts []*Account `json:"accounts"`
}

func (u User) DisplayName() string { return u.Email }

type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type AccountPage struct {
	Page Page[Account] `json:"page"`
	More Page[User]    `json:"more"`
}
