package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")

	cases := []struct {
		env  string
		want Environment
	}{
		{"production", Production},
		{"test", Test},
		{"development", Development},
		{"", Development},
		{"something-else", Development},
	}
	for _, tc := range cases {
		t.Setenv("ENV", tc.env)
		assert.Equal(t, tc.want, GetEnvironment(), "ENV=%q", tc.env)
	}
}

func TestGetEnvironmentCIWins(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("ENV", "production")
	assert.Equal(t, CI, GetEnvironment())
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("CI", "")

	t.Setenv("ENV", "development")
	assert.True(t, IsDevelopment())

	t.Setenv("ENV", "production")
	assert.False(t, IsDevelopment())
}
