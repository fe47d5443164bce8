package domain

import (
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	ExternalSubject string    `json:"-"`
	DateJoined      time.Time `json:"date_joined"`
}

// AuthorStats are totals across every article a user has written.
type AuthorStats struct {
	TotalViews    int64
	TotalComments int64
}

type Profile struct {
	User           User
	ExperienceDays int
	Stats          AuthorStats
	Articles       []Article
}

// RegistrationInput is the submitted registration form.
type RegistrationInput struct {
	Username             string
	Password             string
	PasswordConfirmation string
}

func (in RegistrationInput) Validate() error {
	verr := &ValidationError{}

	switch {
	case in.Username == "":
		verr.Add("username", "This field is required.")
	case utf8.RuneCountInString(in.Username) > MaxUsernameLength:
		verr.Add("username", "Ensure this value has at most 150 characters.")
	case !usernamePattern.MatchString(in.Username):
		verr.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}

	switch {
	case in.Password == "":
		verr.Add("password1", "This field is required.")
	case utf8.RuneCountInString(in.Password) < MinPasswordLength:
		verr.Add("password1", "This password is too short. It must contain at least 8 characters.")
	}

	if in.Password != in.PasswordConfirmation {
		verr.Add("password2", "The two password fields didn't match.")
	}

	return verr.OrNil()
}

// ExperienceDays counts whole calendar days between joining and now.
func ExperienceDays(joined, now time.Time) int {
	jy, jm, jd := joined.Date()
	ny, nm, nd := now.In(joined.Location()).Date()
	start := time.Date(jy, jm, jd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
