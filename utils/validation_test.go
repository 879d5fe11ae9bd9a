package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"0912345678", "0123456789", "01234567890"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %s to be valid", phone)
	}

	invalid := []string{"", "091234567", "012345678901", "09123abc78", "+84912345678", "0912 345 678"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %s to be invalid", phone)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("khach@example.com"))
	assert.True(t, ValidateEmail("a.b+tag@sub.domain.vn"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tom-hum-alaska", Slugify("Tôm Hùm Alaska"))
	assert.Equal(t, "ca-hoi-na-uy-phi-le", Slugify("Cá Hồi Na Uy Phi Lê"))
	assert.Equal(t, "muc-ong", Slugify("  Mực ống  "))
	assert.Equal(t, "combo-2-cua-thit", Slugify("Combo 2 Cua Thịt!!!"))
	assert.Equal(t, "", Slugify("   "))
}
