package utils

import (
	"errors"
	"testing"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContactRows(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		expectedRows []models.ContactRow
		expectError  bool
	}{
		{
			name: "Standard header order",
			data: "userName,email,phoneNumber\n" +
				"Ravi,ravi@example.com,+919812345678\n" +
				"Mira,mira@example.com,+919812345679\n",
			expectedRows: []models.ContactRow{
				{UserName: "Ravi", Email: "ravi@example.com", PhoneNumber: "+919812345678"},
				{UserName: "Mira", Email: "mira@example.com", PhoneNumber: "+919812345679"},
			},
		},
		{
			name: "Columns in any order",
			data: "phoneNumber,userName,email\n" +
				"+919812345678,Ravi,ravi@example.com\n",
			expectedRows: []models.ContactRow{
				{UserName: "Ravi", Email: "ravi@example.com", PhoneNumber: "+919812345678"},
			},
		},
		{
			name: "Rows without a phone number are dropped",
			data: "userName,email,phoneNumber\n" +
				"Ravi,ravi@example.com,+919812345678\n" +
				"Mira,mira@example.com,\n",
			expectedRows: []models.ContactRow{
				{UserName: "Ravi", Email: "ravi@example.com", PhoneNumber: "+919812345678"},
			},
		},
		{
			name: "Values are trimmed",
			data: "userName,email,phoneNumber\n" +
				" Ravi , ravi@example.com , +919812345678 \n",
			expectedRows: []models.ContactRow{
				{UserName: "Ravi", Email: "ravi@example.com", PhoneNumber: "+919812345678"},
			},
		},
		{
			name:         "Header only yields no rows",
			data:         "userName,email,phoneNumber\n",
			expectedRows: nil,
		},
		{
			name:        "Missing phoneNumber column",
			data:        "userName,email\nRavi,ravi@example.com\n",
			expectError: true,
		},
		{
			name:        "Unrecognized header",
			data:        "name,phone\nRavi,+919812345678\n",
			expectError: true,
		},
		{
			name:        "Empty payload",
			data:        "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseContactRows(tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, models.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRows, rows)
		})
	}
}
