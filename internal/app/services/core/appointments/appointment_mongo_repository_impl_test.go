package appointments

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDayFilter(t *testing.T) {
	patientID := primitive.NewObjectID()
	filter := dayFilter(patientID, "2024-05-01")

	assert.Equal(t, patientID, filter["paciente"])

	pattern, ok := filter["fecha"].(primitive.Regex)
	if !assert.True(t, ok) {
		return
	}
	re := regexp.MustCompile(pattern.Pattern)

	for _, fecha := range []string{"2024-05-01", "2024-05-01T00:00:00Z", "2024-05-01T23:59:59.000Z"} {
		assert.True(t, re.MatchString(fecha), fecha)
	}
	for _, fecha := range []string{"2024-05-02", "2024-05-011", "x2024-05-01", "2024-05-01 10:00", " 2024-05-01", "2024-05-01 "} {
		assert.False(t, re.MatchString(fecha), fecha)
	}
}
