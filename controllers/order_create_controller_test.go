package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.True(t, isDuplicateKeyError(errors.New("ERROR: some failure (SQLSTATE 23505)")))

	assert.False(t, isDuplicateKeyError(nil))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused")))
	assert.False(t, isDuplicateKeyError(gorm.ErrRecordNotFound))
}
