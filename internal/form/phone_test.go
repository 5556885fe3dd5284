package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"8", "+7 8"},
		{"79", "+7 (9"},
		{"7912", "+7 (912"},
		{"791234", "+7 (912) 34"},
		{"79123456", "+7 (912) 345-6"},
		{"7912345678", "+7 (912) 345-67-8"},
		{"79123456789", "+7 (912) 345-67-89"},
		{"791234567890123", "+7 (912) 345-67-89"},
		{"8 912 345 67 89", "+7 (912) 345-67-89"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatPhone(c.in), c.in)
	}
}

func TestFormatPhone_Idempotent(t *testing.T) {
	once := FormatPhone("89123456789")

	assert.Equal(t, once, FormatPhone(once))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+7 (912) 345-67-89"))
	assert.True(t, ValidPhone("9123456789"))
	assert.False(t, ValidPhone("912345678"))
	assert.False(t, ValidPhone(""))
}
