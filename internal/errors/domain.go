package errors

import stderrors "errors"

// Category groups domain failures by how callers must react to them.
type Category string

const (
	CategoryValidation           Category = "validation"
	CategoryNotFoundOrForbidden  Category = "not_found_or_forbidden"
	CategoryConsistencyViolation Category = "consistency_violation"
)

// DomainError is a classified failure raised by the engine. Values are meant to
// be declared once as sentinels and compared with errors.Is.
type DomainError struct {
	Category Category
	Code     ErrorCode
	Message  string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewValidation(code ErrorCode, message string) *DomainError {
	return &DomainError{Category: CategoryValidation, Code: code, Message: message}
}

func NewNotFoundOrForbidden(message string) *DomainError {
	return &DomainError{Category: CategoryNotFoundOrForbidden, Code: ResourceNotFound, Message: message}
}

func NewConsistencyViolation(code ErrorCode, message string) *DomainError {
	return &DomainError{Category: CategoryConsistencyViolation, Code: code, Message: message}
}

// AsDomainError unwraps err until it finds a DomainError.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CategoryOf reports the category of the first DomainError in err's chain.
func CategoryOf(err error) (Category, bool) {
	de, ok := AsDomainError(err)
	if !ok {
		return "", false
	}
	return de.Category, true
}

func IsValidation(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == CategoryValidation
}

func IsNotFoundOrForbidden(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == CategoryNotFoundOrForbidden
}

func IsConsistencyViolation(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == CategoryConsistencyViolation
}
