package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPhoneUniqueIndexSkipsEmptyValues(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Phone")
	require.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.True(t, strings.Contains(tag, "uniqueIndex"))
	// accounts without a phone (Google signups, bootstrapped admin)
	// must not collide with each other on the index
	assert.True(t, strings.Contains(tag, "where:phone <> ''"))
}

func TestIsAdmin(t *testing.T) {
	admin := User{Role: RoleAdmin}
	customer := User{Role: RoleUser}
	assert.True(t, admin.IsAdmin())
	assert.False(t, customer.IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
