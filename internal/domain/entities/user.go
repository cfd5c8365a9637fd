package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Email       string
	Password    string
	Role        string
	LastLoginAt *time.Time
}

func NewUser(name, email, password string) *User {
	now := time.Now()
	return &User{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		Role:      RoleUser,
	}
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return errors.New("a valid email is required")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return errors.New("role must be 'user' or 'admin'")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) TouchLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

func (u *User) UpdateProfile(name, email string) error {
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(email))
	}
	u.UpdatedAt = time.Now()
	return u.validate()
}
