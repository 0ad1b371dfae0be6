package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Str0ngpass", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}

	for _, tc := range cases {
		valid, message := ValidatePassword(tc.password)
		assert.Equal(t, tc.valid, valid, tc.password)
		if !tc.valid {
			assert.NotEmpty(t, message)
		}
	}
}
