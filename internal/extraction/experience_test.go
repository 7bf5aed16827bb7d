package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"years of experience", "5 years of experience in Python and Django", intPtr(5)},
		{"plus and no of", "Python and Django required, 3+ years experience", intPtr(3)},
		{"singular", "1 year experience", intPtr(1)},
		{"experience colon", "Experience: 7 years", intPtr(7)},
		{"years in software", "4 years in software", intPtr(4)},
		{"years in programming", "10 years in programming", intPtr(10)},
		{"zero", "0 years of experience", intPtr(0)},
		{"none", "Looking for a motivated engineer", nil},
		{"empty", "", nil},
		{"years without context", "5 years at Acme", nil},
		{"vertical tab", "5\vyears experience", intPtr(5)},
		{"vertical tab after colon", "Experience:\v4 years", intPtr(4)},
		{"no-break space", "3\u00a0years in development", intPtr(3)},
		{"em space", "6 years\u2003of experience", intPtr(6)},
		{"file separator", "2\x1cyears experience", intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceYears(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExperienceYears_PatternPriority(t *testing.T) {
	// "years of experience" wins over "years in development" even when it comes later
	got := ExperienceYears("3 years in development. Also 5 years of experience")
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)
}

func TestExperienceYears_FirstOccurrenceWithinPattern(t *testing.T) {
	got := ExperienceYears("2 years of experience with Go, 8 years of experience overall")
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)
}

func TestExperienceYears_OverflowFallsThrough(t *testing.T) {
	assert.Nil(t, ExperienceYears("99999999999999999999999 years of experience"))

	got := ExperienceYears("99999999999999999999999 years of experience, 6 years in development")
	require.NotNil(t, got)
	assert.Equal(t, 6, *got)
}

func intPtr(v int) *int {
	return &v
}
