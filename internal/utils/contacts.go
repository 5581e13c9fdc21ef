package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/calldeck/calldeck/internal/pkg/models"
)

// ParseContactRows parses a contact import payload. The payload is
// comma-delimited text with a header row naming userName, email and
// phoneNumber columns (in any order). Empty lines are skipped; rows without
// a phone number are dropped, since the phone number is the dedup key.
func ParseContactRows(data string) ([]models.ContactRow, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: contact payload is empty", models.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid contact payload: %v", models.ErrValidation, err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	nameIdx, ok := cols["userName"]
	if !ok {
		return nil, fmt.Errorf("%w: contact payload missing userName column", models.ErrValidation)
	}
	emailIdx, ok := cols["email"]
	if !ok {
		return nil, fmt.Errorf("%w: contact payload missing email column", models.ErrValidation)
	}
	phoneIdx, ok := cols["phoneNumber"]
	if !ok {
		return nil, fmt.Errorf("%w: contact payload missing phoneNumber column", models.ErrValidation)
	}

	var rows []models.ContactRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: invalid contact payload: %v", models.ErrValidation, err)
		}
		if len(record) <= nameIdx || len(record) <= emailIdx || len(record) <= phoneIdx {
			continue
		}

		row := models.ContactRow{
			UserName:    strings.TrimSpace(record[nameIdx]),
			Email:       strings.TrimSpace(record[emailIdx]),
			PhoneNumber: strings.TrimSpace(record[phoneIdx]),
		}
		if row.PhoneNumber == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
