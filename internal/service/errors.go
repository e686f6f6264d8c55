package service

import "errors"

// Sentinel errors controllers translate into HTTP statuses. Missing-row
// errors are not duplicated here: gorm.ErrRecordNotFound is wrapped and
// checked with errors.Is instead.
var (
	ErrDuplicateLogin = errors.New("user with this login already exists")
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrWeakPassword   = errors.New("password must be at least 6 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidCode    = errors.New("verification code is invalid or expired")

	ErrDuplicateName = errors.New("a record with this name already exists")
	ErrDuplicateLink = errors.New("this link already exists")

	ErrNoQuestions = errors.New("test has no questions")

	ErrUnsupportedFileType = errors.New("unsupported file type, allowed: jpg, jpeg, png, webp, mp4, avi")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
)
