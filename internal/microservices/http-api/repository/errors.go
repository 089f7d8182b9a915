package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every backend when the requested record does not
// exist. Services translate it into their own not-found error.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// replaceRow overwrites every column of an existing row. Unlike gorm's Save
// it never falls back to an insert: a row that is gone reports ErrNotFound.
func replaceRow(db *gorm.DB, model any) error {
	result := db.Model(model).Select("*").Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
