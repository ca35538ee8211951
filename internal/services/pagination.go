package services

import (
	"math"
	"strconv"

	"inkwell/internal/apperrors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePageLimit validates the raw page/limit query values. Empty strings
// take the defaults; anything non-integer or out of range is rejected.
func ParsePageLimit(pageStr, limitStr string) (page, limit int, err error) {
	page = defaultPage
	if pageStr != "" {
		n, convErr := strconv.Atoi(pageStr)
		if convErr != nil || n < 1 {
			return 0, 0, apperrors.Validation("Invalid page")
		}
		page = n
	}

	limit = defaultLimit
	if limitStr != "" {
		n, convErr := strconv.Atoi(limitStr)
		if convErr != nil || n < 1 || n > maxLimit {
			return 0, 0, apperrors.Validation("Invalid limit")
		}
		limit = n
	}
	return page, limit, nil
}

// TotalPages is ceil(totalItems/limit). A page beyond this yields an empty
// item list, never an error.
func TotalPages(totalItems int64, limit int) int {
	return int(math.Ceil(float64(totalItems) / float64(limit)))
}
