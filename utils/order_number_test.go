package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	date := time.Date(2026, 1, 22, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "DH202601220001", FormatOrderNumber(date, 1))
	assert.Equal(t, "DH202601229999", FormatOrderNumber(date, 9999))
	assert.Equal(t, "DH202601220000", FormatOrderNumber(date, 0))
}

func TestGenerateOrderNumberShape(t *testing.T) {
	pattern := regexp.MustCompile(`^DH\d{12}$`)
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	for i := 0; i < 50; i++ {
		number := GenerateOrderNumber(now)
		assert.Regexp(t, pattern, number)
		assert.Equal(t, "DH20260831", number[:10])
	}
}
