package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates a missing session or missing admin rights.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientStock indicates a requested quantity above available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderNotPaid indicates a delivery attempt on an unpaid order.
	ErrOrderNotPaid = errors.New("order not paid")
	// ErrAlreadyDelivered indicates a delivery attempt on a delivered order.
	ErrAlreadyDelivered = errors.New("order already delivered")
)
