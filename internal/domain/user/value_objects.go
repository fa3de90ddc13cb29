package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")
