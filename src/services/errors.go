package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Controllers map these to HTTP
// statuses; services never touch status codes themselves.
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("already exists")
)

// MediaUploadError reports a failed upload to the media store. Uploaded is the
// number of images that were already stored remotely before the failure; those
// objects stay live (no rollback).
type MediaUploadError struct {
	Uploaded int
	Err      error
}

func (e *MediaUploadError) Error() string {
	return fmt.Sprintf("media upload failed after %d image(s): %v", e.Uploaded, e.Err)
}

func (e *MediaUploadError) Unwrap() error { return e.Err }

// MediaDestroyError reports one or more failed destroy calls against the media
// store. PublicIDs lists the identifiers whose destroy failed.
type MediaDestroyError struct {
	PublicIDs []string
	Err       error
}

func (e *MediaDestroyError) Error() string {
	return fmt.Sprintf("media destroy failed for %d object(s): %v", len(e.PublicIDs), e.Err)
}

func (e *MediaDestroyError) Unwrap() error { return e.Err }

// MailDeliveryError reports a failed reset-code dispatch. The persisted
// verification code is not rolled back.
type MailDeliveryError struct {
	Err error
}

func (e *MailDeliveryError) Error() string {
	return fmt.Sprintf("email sending failed: %v", e.Err)
}

func (e *MailDeliveryError) Unwrap() error { return e.Err }
