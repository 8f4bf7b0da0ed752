package sqlite

import "github.com/rpggio/toolbox/internal/repository"

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &repository.StorageError{Op: op, Err: err}
}
