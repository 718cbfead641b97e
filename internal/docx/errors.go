package docx

import "errors"

var (
	ErrInvalidLinkTarget = errors.New("invalid link target")
	ErrInvalidHeading    = errors.New("invalid heading")
)
