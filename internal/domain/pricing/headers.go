package pricing

import "strings"

// HeaderCount is the number of column labels in the table.
const HeaderCount = 5

// DefaultTitle is the banner text a new table starts with.
const DefaultTitle = "SALAM"

var defaultHeaders = [HeaderCount]string{"Package", "Features", "Data+Minutes", "Buy Price", "Sell Price"}

// Headers holds the table's column labels.
type Headers [HeaderCount]string

// DefaultHeaders returns the initial column labels.
func DefaultHeaders() Headers {
	return Headers(defaultHeaders)
}

// Set returns headers with slot index replaced. A blank value restores the
// slot's default label.
func (h Headers) Set(index int, value string) (Headers, error) {
	if index < 0 || index >= HeaderCount {
		return h, indexError("header", index, HeaderCount)
	}
	if strings.TrimSpace(value) == "" {
		value = defaultHeaders[index]
	}
	h[index] = value
	return h, nil
}
