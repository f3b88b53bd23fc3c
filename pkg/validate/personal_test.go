package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain text", input: "Jane Doe", expected: "Jane Doe"},
		{name: "Surrounding spaces", input: "  jane@x.com ", expected: "jane@x.com"},
		{name: "Script tag", input: "<script>alert(1)</script>Jane", expected: "Jane"},
		{name: "Bold markup", input: "<b>Jane</b> Doe", expected: "Jane Doe"},
		{name: "Ampersand survives", input: "Tom & Jerry", expected: "Tom & Jerry"},
		{name: "Only markup", input: "<img src=x>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("x"))
	assert.False(t, Required(""))
	assert.False(t, Required(" \t\n"))
}
