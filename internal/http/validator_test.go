package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateISBN(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"valid ISBN-10", "0306406152", true},
		{"valid ISBN-10 with X", "043942089X", true},
		{"valid ISBN-13", "9780306406157", true},
		{"valid ISBN-13 with hyphens", "978-0-306-40615-7", true},
		{"too short", "12345", false},
		{"letters", "abcdefghij", false},
		{"empty passes omitempty", "", true},
	}

	type payload struct {
		Title  string `validate:"required"`
		Author string `validate:"required"`
		ISBN   string `validate:"omitempty,isbn"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(payload{Title: "t", Author: "a", ISBN: tt.isbn})
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, "iSBN", errs[0].Field)
			}
		})
	}
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(matchRequest{Title: "The Long Lake"})
	require.Len(t, errs, 1)
	assert.Equal(t, "author", errs[0].Field)
	assert.Equal(t, "Author is required", errs[0].Message)
}
