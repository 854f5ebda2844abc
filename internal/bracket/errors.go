package bracket

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid bracket input")
	ErrUnknownFormat = errors.New("unknown tournament format")
	ErrStructure     = errors.New("bracket structure is inconsistent")
)
