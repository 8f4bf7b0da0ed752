package history

import (
	"fmt"

	"github.com/rpggio/toolbox/internal/repository"
)

var (
	// ErrMissingKind indicates the originating tool tag was not supplied.
	ErrMissingKind = fmt.Errorf("%w: kind is required", repository.ErrInvalidInput)
	// ErrMissingTitle indicates the title field was not supplied.
	ErrMissingTitle = fmt.Errorf("%w: title is required", repository.ErrInvalidInput)
	// ErrMissingContent indicates the content field was not supplied.
	ErrMissingContent = fmt.Errorf("%w: content is required", repository.ErrInvalidInput)
)
