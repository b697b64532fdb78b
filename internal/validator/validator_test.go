package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Validator_First_FollowsCheckOrder(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())
	assert.Equal(t, "", v.First())

	v.Check(true, "ok", "never recorded")
	v.Check(false, "year", "year is wrong")
	v.Check(false, "title", "title is wrong")
	v.AddError("year", "overwritten?")

	assert.False(t, v.Valid())
	assert.Equal(t, "year is wrong", v.First())
	assert.Equal(t, map[string]string{"year": "year is wrong", "title": "title is wrong"}, v.Errors)
}

func Test_In(t *testing.T) {
	assert.True(t, In("info", "debug", "info"))
	assert.False(t, In("trace", "debug", "info"))
	assert.False(t, In("info"))
}
