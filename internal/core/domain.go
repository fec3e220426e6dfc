package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Utilities     Category = "Utilities"
	Health        Category = "Health"
	Entertainment Category = "Entertainment"
	Other         Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{Food, Transport, Utilities, Health, Entertainment, Other}

type (
	Category string

	Money struct {
		Cents int64
	}

	Expense struct {
		ID        string    `json:"id"`
		Owner     string    `json:"owner"`
		Title     string    `json:"title"`
		Amount    Money     `json:"amount"`
		Category  Category  `json:"category"`
		Date      time.Time `json:"date"`
		Notes     string    `json:"notes"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	User struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		PasswordHash string    `json:"-"`
		CreatedAt    time.Time `json:"createdAt"`
	}
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrTitleTooLong    = errors.New("title too long (max 200 characters)")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyOwner      = errors.New("owner cannot be empty")
	ErrZeroDate        = errors.New("date cannot be zero")

	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("not the record owner")
	ErrUnauthorized = errors.New("not authenticated")

	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ParseCategory validates a raw category value. An empty value defaults
// to Other, matching record-creation behavior.
func ParseCategory(s string) (Category, error) {
	if strings.TrimSpace(s) == "" {
		return Other, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case Food, Transport, Utilities, Health, Entertainment, Other:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Owner) == "" {
		return ErrEmptyOwner
	}
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(e.Title) > 200 {
		return ErrTitleTooLong
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (u User) Validate() error {
	if len(strings.TrimSpace(u.Name)) == 0 {
		return ErrEmptyName
	}
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// IsValidation reports whether err belongs to the validation class of the
// error taxonomy (bad input rather than missing or foreign records).
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrInvalidAmount, ErrEmptyTitle, ErrTitleTooLong, ErrInvalidCategory, ErrEmptyOwner, ErrZeroDate,
		ErrEmptyName, ErrInvalidEmail, ErrPasswordTooShort,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
