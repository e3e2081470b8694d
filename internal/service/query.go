package service

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	// MaxPage keeps (page-1)*perPage well inside int64.
	MaxPage = math.MaxInt32
)

var monthNames = func() map[string]time.Month {
	names := make(map[string]time.Month, 24)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		names[full] = m
		names[full[:3]] = m
	}
	return names
}()

// ParseMonth reads an English month name, its three letter abbreviation or a
// number from 1 to 12. An empty value means no month and yields nil.
func ParseMonth(raw string) (*time.Month, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	if m, ok := monthNames[strings.ToLower(value)]; ok {
		return &m, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 12 {
		return nil, invalidMonth(raw)
	}
	m := time.Month(n)
	return &m, nil
}

// RequireMonth is ParseMonth for endpoints where the month is mandatory.
func RequireMonth(raw string) (time.Month, error) {
	m, err := ParseMonth(raw)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, ErrMonthRequired
	}
	return *m, nil
}

// ParsePagination resolves page and perPage, falling back to the defaults for
// absent, non-numeric or non-positive values and capping both.
func ParsePagination(pageRaw, perPageRaw string) (int, int) {
	page := min(parsePositive(pageRaw, DefaultPage), MaxPage)
	perPage := min(parsePositive(perPageRaw, DefaultPerPage), MaxPerPage)
	return page, perPage
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
