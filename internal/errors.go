package internal

import "errors"

var (
	ErrReceiptNotFound = errors.New("no receipt found for that id")
	ErrInvalidReceipt  = errors.New("the receipt is invalid")
)
