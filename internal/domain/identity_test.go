package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "lowercase hex", raw: "a1b2c3d4e5f6a1b2c3d4e5f6", valid: true},
		{name: "uppercase hex", raw: "A1B2C3D4E5F6A1B2C3D4E5F6", valid: true},
		{name: "mixed case", raw: "a1B2c3D4e5F6a1B2c3D4e5F6", valid: true},
		{name: "23 chars", raw: strings.Repeat("a", 23)},
		{name: "25 chars", raw: strings.Repeat("a", 25)},
		{name: "non hex character", raw: "a1b2c3d4e5f6a1b2c3d4e5fg"},
		{name: "empty", raw: ""},
		{name: "short", raw: "short"},
		{name: "trailing newline", raw: "a1b2c3d4e5f6a1b2c3d4e5f\n"},
		{name: "quoted", raw: "\"a1b2c3d4e5f6a1b2c3d4e5f6\""},
		{name: "not-a-valid-id", raw: "not-a-valid-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidToken(tt.raw))
		})
	}
}

func TestCleanTokenStripsQuotesAndWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6", CleanToken(` "a1b2c3d4e5f6a1b2c3d4e5f6" `))
	assert.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6", CleanToken(`'a1b2c3d4e5f6a1b2c3d4e5f6'`))
	assert.Equal(t, `"abc'`, CleanToken(`"abc'`))
	assert.Equal(t, `"`, CleanToken(`"`))
}

func TestNormalizeCourseCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CS471", NormalizeCourseCode("  cs471 "))
	assert.Equal(t, "", NormalizeCourseCode("   "))
}

func TestIdentityClassification(t *testing.T) {
	t.Parallel()

	valid := Identity{UserID: "a1b2c3d4e5f6a1b2c3d4e5f6", CourseCode: "CS471"}
	assert.True(t, valid.Usable())
	assert.False(t, valid.Corrupt())

	missingCourse := Identity{UserID: "a1b2c3d4e5f6a1b2c3d4e5f6"}
	assert.False(t, missingCourse.Usable())
	assert.False(t, missingCourse.Corrupt())

	corrupt := Identity{UserID: "short", CourseCode: "CS471"}
	assert.False(t, corrupt.Usable())
	assert.True(t, corrupt.Corrupt())

	assert.True(t, Identity{}.Empty())
	assert.False(t, Identity{}.Corrupt())
}
