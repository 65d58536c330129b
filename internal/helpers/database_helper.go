package helpers

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// TextToString unwraps a nullable pgtype.Text, returning "" when unset.
func TextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TimeToNullableTimestamptz converts time to nullable pgtype.Timestamptz
func TimeToNullableTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimeToDate converts time to pgtype.Date, truncating the clock component.
func TimeToDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// TimeToNullableDate converts time to nullable pgtype.Date. The zero time
// maps to NULL.
func TimeToNullableDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: t, Valid: true}
}

// DateToTime unwraps a nullable pgtype.Date, returning the zero time when unset.
func DateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

// Int32ToNullableInt4 converts int32 to nullable pgtype.Int4
func Int32ToNullableInt4(i int32) pgtype.Int4 {
	return pgtype.Int4{Int32: i, Valid: true}
}

// BoolToNullableBool converts bool to nullable pgtype.Bool
func BoolToNullableBool(b bool) pgtype.Bool {
	return pgtype.Bool{Bool: b, Valid: true}
}

// UUIDToPgUUID converts a uuid.UUID to pgtype.UUID
func UUIDToPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// PgUUIDToUUID converts a pgtype.UUID back to uuid.UUID. Invalid values map
// to the nil UUID.
func PgUUIDToUUID(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return uuid.UUID(id.Bytes)
}

// DecimalToNumeric converts a decimal amount to pgtype.Numeric for storage.
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// NumericToDecimal converts a stored pgtype.Numeric into a decimal amount.
// NULL maps to zero.
func NumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
