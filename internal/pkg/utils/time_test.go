package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	assert.Equal(t, "2024-05-01", DayOf("2024-05-01"))
	assert.Equal(t, "2024-05-01", DayOf("2024-05-01T10:00:00Z"))
	assert.Equal(t, "2024-05-01", DayOf(" 2024-05-01T23:59:59.999+02:00 "))
	assert.Equal(t, "", DayOf(""))
}

func TestIsCalendarDate(t *testing.T) {
	valid := []string{"2024-05-01", "2024-02-29T08:30:00Z"}
	for _, value := range valid {
		assert.True(t, IsCalendarDate(value), value)
	}

	invalid := []string{"", "tomorrow", "2024-13-01", "2023-02-29", "01-05-2024", "2024-05-01 10:00"}
	for _, value := range invalid {
		assert.False(t, IsCalendarDate(value), value)
	}
}

func TestDayPattern(t *testing.T) {
	re := regexp.MustCompile(DayPattern("2024-05-01"))
	assert.True(t, re.MatchString("2024-05-01"))
	assert.True(t, re.MatchString("2024-05-01T10:00:00Z"))
	assert.False(t, re.MatchString("2024-05-01 "))
	assert.False(t, re.MatchString("2024-05-010"))

	assert.False(t, regexp.MustCompile(DayPattern("2024.05.01")).MatchString("2024-05-01"))
}
