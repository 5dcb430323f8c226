package repository

import (
	"errors"

	"gorm.io/gorm"
)

// isNotFound reports a missing row.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// findOne runs q.First and maps a missing row to (nil, nil).
func findOne[T any](q *gorm.DB) (*T, error) {
	var row T
	if err := q.First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
