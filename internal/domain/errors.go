package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeNotFound      = "NOT_FOUND"
	CodeBadRequest    = "BAD_REQUEST"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeProjectExists = "PROJECT_EXISTS"
	CodeInternal      = "INTERNAL_ERROR"
)

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrBadRequest - некорректный запрос
	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}

	// ErrProjectExists - проект с таким именем уже существует
	ErrProjectExists = &DomainError{
		Code:    CodeProjectExists,
		Message: "project name already exists",
	}

	// ErrUnauthorized - нет действующей сессии
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "session required",
	}

	// ErrForbidden - участника может удалить только он сам или администратор
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "only the member or an admin may remove this member",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с описанием причины
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
