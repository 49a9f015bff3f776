package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Catalog-related errors

type CatalogError struct {
	*DomainError
}

func NewCatalogError(message string) *CatalogError {
	return &CatalogError{DomainError: &DomainError{Message: message}}
}

type InvalidRecordError struct {
	*CatalogError
	Record string
}

func NewInvalidRecordError(record, message string) *InvalidRecordError {
	return &InvalidRecordError{
		CatalogError: NewCatalogError(fmt.Sprintf("invalid %s record: %s", record, message)),
		Record:       record,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
