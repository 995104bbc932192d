package dashboard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
)

// parseDecimal parses a money field from a form, answering a validation error
// the page can show verbatim.
func parseDecimal(raw, field string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, field)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s cannot be negative", domain.ErrValidation, field)
	}
	return d, nil
}
