package fechamento

import (
	"strings"
	"time"

	"github.com/grafica-tools/fechamento/pkg/models/domain"
)

const (
	isoDate   = "2006-01-02"
	labelDate = "02/01/2006"
)

// dateLayouts are the shapes order dates have been observed in. First
// match wins.
var dateLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006-01-02 15:04:05",
	labelDate,
}

// parseDate normalizes an upstream date string to a day value. False
// means the field was absent or unreadable.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// referenceDate picks the date that anchors an order for filtering and
// date grouping. Auto prefers the delivery date and falls back to the
// entry date.
func referenceDate(order domain.OrderRecord, mode domain.DateMode) (time.Time, bool) {
	switch mode {
	case domain.DateModeEntrada:
		return parseDate(order.DataEntrada)
	case domain.DateModeEntrega:
		return parseDate(order.DataEntrega)
	default:
		if t, ok := parseDate(order.DataEntrega); ok {
			return t, true
		}
		return parseDate(order.DataEntrada)
	}
}
