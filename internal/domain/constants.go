package domain

import "github.com/m04kA/SMC-SalonBookingService/pkg/types"

// Default salon configuration values
const (
	DefaultSlotStepMinutes = 30
	DefaultOpenTime        = types.TimeString("09:00")
	DefaultCloseTime       = types.TimeString("18:00")
	DefaultClosedDays      = "0" // Monday, as in the original salon settings
)

// EndOfDay is the latest representable time of day. No slot may end after it.
const EndOfDay = types.TimeString("23:59")

// Business validation constants
const (
	MaxClientNameLength    = 255
	MaxClientContactLength = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
