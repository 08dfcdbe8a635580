package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// customHoursEntry is one weekday override inside salons.custom_hours
type customHoursEntry struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// parseClosedDays разбирает список выходных "0,6" (0 = понедельник)
func parseClosedDays(raw string) ([]domain.DayOfWeek, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.DayOfWeek{}, nil
	}

	parts := strings.Split(raw, ",")
	days := make([]domain.DayOfWeek, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: closed_days %q: %v", ErrInvalidSalonConfig, raw, err)
		}
		day := domain.DayOfWeek(n)
		if !day.IsValid() {
			return nil, fmt.Errorf("%w: closed_days %q: weekday %d out of range", ErrInvalidSalonConfig, raw, n)
		}
		days = append(days, day)
	}
	return days, nil
}

// parseCustomHours разбирает JSON вида {"5": {"open": "10:00", "close": "14:00"}}.
// NULL и пустой объект означают отсутствие переопределений.
func parseCustomHours(raw []byte) (map[domain.DayOfWeek]types.TimeRange, error) {
	hours := make(map[domain.DayOfWeek]types.TimeRange)
	if len(raw) == 0 {
		return hours, nil
	}

	var entries map[string]customHoursEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: custom_hours: %v", ErrInvalidSalonConfig, err)
	}

	for key, entry := range entries {
		n, err := strconv.Atoi(key)
		if err != nil || !domain.DayOfWeek(n).IsValid() {
			return nil, fmt.Errorf("%w: custom_hours: bad weekday key %q", ErrInvalidSalonConfig, key)
		}
		open, err := types.NewTimeStringFromString(entry.Open)
		if err != nil {
			return nil, fmt.Errorf("%w: custom_hours[%s].open: %v", ErrInvalidSalonConfig, key, err)
		}
		closing, err := types.NewTimeStringFromString(entry.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: custom_hours[%s].close: %v", ErrInvalidSalonConfig, key, err)
		}
		hours[domain.DayOfWeek(n)] = types.NewTimeRange(open, closing)
	}
	return hours, nil
}

// parseTimezone загружает часовой пояс салона, пустое значение - fallback
func parseTimezone(name string, fallback *time.Location) (*time.Location, error) {
	if name == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSalonConfig, name, err)
	}
	return loc, nil
}

// optionalRange собирает интервал из nullable колонок start_time/end_time
func optionalRange(start, end types.TimeString) *types.TimeRange {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	r := types.NewTimeRange(start, end)
	return &r
}
