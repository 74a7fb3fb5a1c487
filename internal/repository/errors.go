package repository

import "errors"

// ErrDuplicateEmail is returned by UserRepo.Create when the email is taken.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// ErrMissingUserEmail is returned by AssessmentRepo.Upsert for a document
// without a string user.email.
var ErrMissingUserEmail = errors.New("assessment has no user.email")
