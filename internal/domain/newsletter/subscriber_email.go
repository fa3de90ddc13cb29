package newsletter

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidSubscriberEmail = errors.New("invalid subscriber email")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type SubscriberEmail struct {
	value string
}

func NewSubscriberEmail(s string) (SubscriberEmail, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return SubscriberEmail{}, ErrInvalidSubscriberEmail
	}
	return SubscriberEmail{value: s}, nil
}

func (e SubscriberEmail) String() string { return e.value }
