package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "tom-hum", slugCandidate("tom-hum", 0))
	assert.Equal(t, "tom-hum", slugCandidate("tom-hum", 1))
	assert.Equal(t, "tom-hum-2", slugCandidate("tom-hum", 2))
	assert.Equal(t, "tom-hum-3", slugCandidate("tom-hum", 3))
	assert.Equal(t, "tom-hum-10", slugCandidate("tom-hum", 10))
}
