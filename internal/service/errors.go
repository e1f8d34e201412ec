package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid   = errors.New("invalid request body")
	ErrUserNotFound   = errors.New("User not found")
	ErrTierNotFound   = errors.New("Tier not found")
	ErrQuestNotFound  = errors.New("Quest not found")
	ErrPostNotFound   = errors.New("Post not found")
	ErrSeedInProgress = errors.New("seed already in progress")
	UnauthorizedError = errors.New("Unauthorized")
	UnExpectedError   = errors.New("internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:   BadRequest,
	ErrUserNotFound:   NotFound,
	ErrTierNotFound:   NotFound,
	ErrQuestNotFound:  NotFound,
	ErrPostNotFound:   NotFound,
	ErrSeedInProgress: Conflict,
	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
