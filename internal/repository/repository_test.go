package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.NotNil(t, NewUserRepo(nil))
	assert.NotNil(t, NewAvailabilityRepo(nil))
	assert.NotNil(t, NewBookingRepo(nil))
}
