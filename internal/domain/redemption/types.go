package redemption

import "strings"

// Status values are stored and rendered in their Spanish form.
type Status string

const (
	StatusActive   Status = "ACTIVO"
	StatusUsed     Status = "USADO"
	StatusCanceled Status = "CANCELADO"
	StatusExpired  Status = "VENCIDO"
)

var statusAliases = map[string]Status{
	"ACTIVO":    StatusActive,
	"ACTIVE":    StatusActive,
	"USADO":     StatusUsed,
	"USED":      StatusUsed,
	"CANCELADO": StatusCanceled,
	"CANCELED":  StatusCanceled,
	"CANCELLED": StatusCanceled,
	"VENCIDO":   StatusExpired,
	"EXPIRED":   StatusExpired,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUsed, StatusCanceled, StatusExpired:
		return true
	default:
		return false
	}
}

// ParseStatus accepts Spanish and English spellings, any case.
func ParseStatus(s string) (Status, error) {
	status, ok := statusAliases[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func ValidStatuses() []Status {
	return []Status{StatusActive, StatusUsed, StatusCanceled, StatusExpired}
}

// ShouldRefund reports whether moving from -> to gives the points back.
// Only an ACTIVO redemption being canceled is refunded.
func ShouldRefund(from, to Status) bool {
	return from == StatusActive && to == StatusCanceled
}
