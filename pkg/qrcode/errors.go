package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrPayloadTooLarge is returned when the content exceeds the byte
	// capacity of the largest QR version at the chosen recovery level.
	ErrPayloadTooLarge = errors.New("payload exceeds QR code capacity")

	// ErrInvalidSize is returned for a non-positive or too-small pixel size.
	ErrInvalidSize = errors.New("invalid image size")

	// ErrWrite is returned when persisting the rendered image fails.
	ErrWrite = errors.New("failed to write image")
)
