package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hrplatform/freelancer-api/internal/helpers"
)

const dateLayout = "2006-01-02"

// parseDate parses a 2006-01-02 date string.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// parseOptionalDate parses a date string, mapping "" to the zero time.
func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return parseDate(s)
}

// pgtypeNumericOrNull parses a decimal string into a nullable numeric.
// Empty and unparseable strings map to NULL; callers validate separately.
func pgtypeNumericOrNull(s string) pgtype.Numeric {
	if strings.TrimSpace(s) == "" {
		return pgtype.Numeric{Valid: false}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return helpers.DecimalToNumeric(d)
}

// pgtypeUUIDNull returns a NULL uuid column value.
func pgtypeUUIDNull() pgtype.UUID {
	return pgtype.UUID{Valid: false}
}

// generateDocumentNumber builds a human-readable entity number such as
// CTR-2026-4F2A1B. Uniqueness comes from the random segment; the schema
// still enforces it with a unique constraint.
func generateDocumentNumber(prefix string, at time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%d-%X", prefix, at.Year(), id[:3])
}
