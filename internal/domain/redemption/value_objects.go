package redemption

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidStatus        = errors.New("invalid redemption status")
	ErrInvalidPoints        = errors.New("points to redeem must be positive")
	ErrNotesTooLong         = errors.New("notes must be at most 500 characters")
	ErrInvalidJourney       = errors.New("journey must be between 1 and 50 characters")
	ErrAccountInactive      = errors.New("inactive account cannot redeem")
	ErrBenefitInactive      = errors.New("inactive benefit cannot be redeemed")
	ErrJourneyRequired      = errors.New("benefit requires a journey")
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrPointsExceedCost     = errors.New("points exceed the benefit cost")
	ErrUseDateNotAfterStart = errors.New("use date must be after the redemption date")
	ErrLeaveDaysExceeded    = errors.New("accumulated leave days exceed the allowed maximum")
)

const (
	maxNotesLength   = 500
	maxJourneyLength = 50

	// DefaultMaxLeaveDays is the accumulated leave threshold above which redemptions are refused.
	DefaultMaxLeaveDays = 30
)

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) Value() string { return n.value }

func (n Notes) IsEmpty() bool { return n.value == "" }

// Journey is optional; the zero value means "not provided".
type Journey struct {
	value string
}

func NewJourney(s string) (Journey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Journey{}, nil
	}
	if utf8.RuneCountInString(s) > maxJourneyLength {
		return Journey{}, ErrInvalidJourney
	}
	return Journey{value: s}, nil
}

func (j Journey) Value() string { return j.value }

func (j Journey) IsEmpty() bool { return j.value == "" }

// NormalizeTime converts to UTC so zoned and naive timestamps compare on one reference.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC()
}

func CheckLeaveDays(days, maxDays int) error {
	if maxDays <= 0 {
		maxDays = DefaultMaxLeaveDays
	}
	if days > maxDays {
		return ErrLeaveDaysExceeded
	}
	return nil
}
