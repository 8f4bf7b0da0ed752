package note

import (
	"fmt"

	"github.com/rpggio/toolbox/internal/repository"
)

var (
	// ErrMissingTitle indicates the title field was not supplied.
	ErrMissingTitle = fmt.Errorf("%w: title is required", repository.ErrInvalidInput)
	// ErrMissingContent indicates the content field was not supplied.
	ErrMissingContent = fmt.Errorf("%w: content is required", repository.ErrInvalidInput)
)
