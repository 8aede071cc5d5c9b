package holiday

import "fmt"

// holidaysResponse is the shape of the holiday API response.
type holidaysResponse struct {
	Meta struct {
		Code        int    `json:"code"`
		ErrorType   string `json:"error_type"`
		ErrorDetail string `json:"error_detail"`
	} `json:"meta"`
	Response struct {
		Holidays []apiHoliday `json:"holidays"`
	} `json:"response"`
}

// apiHoliday is one holiday entry as returned by the API. Only the first
// type classification is consulted.
type apiHoliday struct {
	Name string   `json:"name"`
	Type []string `json:"type"`
	Date struct {
		ISO string `json:"iso"`
	} `json:"date"`
}

// APIError represents an error response from the holiday API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("holiday API error (status %d): %s", e.StatusCode, e.Message)
}
