package domain

import (
	"errors"
	"fmt"
	"time"
)

// NotFoundError indicates that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// DomainError indicates a business-rule violation.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func NewDomainError(message string) error {
	return &DomainError{Message: message}
}

func IsDomainError(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}

// ConflictError indicates an entity is referenced elsewhere and cannot be
// mutated or removed.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// ExternalServiceError indicates a collaborator (payment gateway, customer
// directory) was unreachable or too slow. Timeout distinguishes "service
// unreachable" from "service said no".
type ExternalServiceError struct {
	Service  string
	Timeout  bool
	Duration time.Duration
	Err      error
}

func (e *ExternalServiceError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("timeout calling %s after %s: %v", e.Service, e.Duration, e.Err)
	}
	return fmt.Sprintf("error calling %s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func IsExternalServiceError(err error) bool {
	var target *ExternalServiceError
	return errors.As(err, &target)
}

// GatewayContractError indicates the payment gateway answered with a body the
// client could not interpret. This is a contract break with the collaborator,
// not a recoverable domain error.
type GatewayContractError struct {
	Message string
	Err     error
}

func (e *GatewayContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GatewayContractError) Unwrap() error { return e.Err }

func IsGatewayContractError(err error) bool {
	var target *GatewayContractError
	return errors.As(err, &target)
}
