package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/guestbook/backend/internal/domain"
)

func TestDateOf_dropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, domain.NewDate(2024, time.January, 10), domain.DateOf(ts))
}

// TestDateOf_usesTimestampLocation verifies the calendar day is taken in the
// timestamp's own zone, matching how a date picker in that zone would read it.
func TestDateOf_usesTimestampLocation(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	ts := time.Date(2024, 1, 10, 0, 30, 0, 0, berlin) // 2024-01-09T23:30Z

	assert.Equal(t, domain.NewDate(2024, time.January, 10), domain.DateOf(ts))
}

func TestNewDate_normalizes(t *testing.T) {
	assert.Equal(t, domain.Date{Year: 2024, Month: time.February, Day: 1}, domain.NewDate(2024, time.January, 32))
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, domain.Date{}.IsZero())
	assert.False(t, domain.NewDate(2024, time.January, 1).IsZero())
}

func TestDate_Before(t *testing.T) {
	a := domain.NewDate(2024, time.January, 10)
	b := domain.NewDate(2024, time.January, 12)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDate_StringAndFormat(t *testing.T) {
	d := domain.NewDate(2024, time.March, 5)

	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "05.03.2024", d.Format("02.01.2006"))
}

func TestBookingEntry_valueEquality(t *testing.T) {
	a := domain.NewBookingEntry("Alice", domain.NewDate(2024, 1, 10), domain.NewDate(2024, 1, 12))
	b := domain.NewBookingEntry("Alice", domain.NewDate(2024, 1, 10), domain.NewDate(2024, 1, 12))
	c := domain.NewBookingEntry("Alice", domain.NewDate(2024, 1, 10), domain.NewDate(2024, 1, 13))

	assert.True(t, a == b)
	assert.False(t, a == c)
}
