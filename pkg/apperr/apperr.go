package apperr

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAuth              = errors.New("authentication failed")
)

// Error codes
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodePaymentNotFound     = "PAYMENT_NOT_FOUND"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeCartItemNotFound    = "CART_ITEM_NOT_FOUND"
	CodeBlogPostNotFound    = "BLOG_POST_NOT_FOUND"
	CodePaymentAlreadyPaid  = "PAYMENT_ALREADY_PAID"
	CodeInvalidOrderStatus  = "INVALID_ORDER_STATUS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeEmailAlreadyExists  = "EMAIL_ALREADY_EXISTS"
	CodeUnsupportedPackage  = "UNSUPPORTED_INSTALLMENT_PACKAGE"
	CodeEmptyCart           = "EMPTY_CART"
	CodeStorageError        = "STORAGE_ERROR"
)

// AppError represents a business logic error with a stable code
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error
func New(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap common errors with business context

func WrapValidation(message string) *AppError {
	return New(CodeValidation, message, ErrValidation)
}

func WrapUnsupportedPackage(months int) *AppError {
	return New(
		CodeUnsupportedPackage,
		fmt.Sprintf("Installment duration of %d months is not supported", months),
		ErrValidation,
	)
}

func WrapEmptyCart() *AppError {
	return New(CodeEmptyCart, "Cart is empty", ErrValidation)
}

func WrapProductNotFound(productID string) *AppError {
	return New(
		CodeProductNotFound,
		fmt.Sprintf("Product with ID %s not found", productID),
		ErrNotFound,
	)
}

func WrapOrderNotFound(orderID string) *AppError {
	return New(
		CodeOrderNotFound,
		fmt.Sprintf("Order with ID %s not found", orderID),
		ErrNotFound,
	)
}

func WrapPaymentNotFound(orderID string, paymentNumber int) *AppError {
	return New(
		CodePaymentNotFound,
		fmt.Sprintf("Payment #%d not found for order %s", paymentNumber, orderID),
		ErrNotFound,
	)
}

func WrapCartItemNotFound(itemID string) *AppError {
	return New(
		CodeCartItemNotFound,
		fmt.Sprintf("Cart item with ID %s not found", itemID),
		ErrNotFound,
	)
}

func WrapBlogPostNotFound(slug string) *AppError {
	return New(
		CodeBlogPostNotFound,
		fmt.Sprintf("Blog post %q not found", slug),
		ErrNotFound,
	)
}

func WrapPaymentAlreadyPaid(orderID string, paymentNumber int) *AppError {
	return New(
		CodePaymentAlreadyPaid,
		fmt.Sprintf("Payment #%d for order %s is already paid", paymentNumber, orderID),
		ErrInvalidTransition,
	)
}

func WrapInvalidOrderStatus(from, to string) *AppError {
	return New(
		CodeInvalidOrderStatus,
		fmt.Sprintf("Order cannot move from %s to %s", from, to),
		ErrInvalidTransition,
	)
}

func WrapInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid email or password", ErrAuth)
}

func WrapEmailAlreadyExists(email string) *AppError {
	return New(
		CodeEmailAlreadyExists,
		fmt.Sprintf("Email %s is already registered", email),
		ErrAuth,
	)
}

func WrapStorageError(err error) *AppError {
	return New(CodeStorageError, "state storage operation failed", err)
}
