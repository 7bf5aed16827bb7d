package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bachelor",
			text: "Bachelor of Science in Computer Science",
			want: []string{"Bachelor Of Science In Computer Science"},
		},
		{
			name: "mba",
			text: "Holds an MBA.",
			want: []string{"Holds An Mba."},
		},
		{
			name: "repeated mention collapses",
			text: "PhD. PhD.",
			want: []string{"Phd. Phd."},
		},
		{
			name: "abbreviation inside a word",
			text: "Built jobs",
			want: []string{"Built Jobs"},
		},
		{
			name: "vertical tab line break",
			text: "Bachelor\v\nof Science",
			want: []string{"Bachelor\v\nOf Science"},
		},
		{
			name: "no-break space",
			text: "Master\u00a0of Arts at MIT",
			want: []string{"Master\u00a0Of Arts At Mit"},
		},
		{
			name: "unicode space trimmed",
			text: "\u3000MBA\u3000",
			want: []string{"Mba"},
		},
		{
			name: "nothing",
			text: "Hello.",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Education(tt.text))
		})
	}
}

func TestEducation_ContextWindow(t *testing.T) {
	text := "Some filler text before the degree. Master of Engineering from a well known technical university in Europe."

	// 20 characters before "Master of Engineering" and 30 after it
	assert.Equal(t, []string{"Before The Degree. Master Of Engineering From A Well Known Technical U"}, Education(text))
}

func TestEducation_Sorted(t *testing.T) {
	text := "PhD in physics, 2015.\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\nMBA, 2010."

	assert.Equal(t, []string{"Mba, 2010.", "Phd In Physics, 2015."}, Education(text))
}

func TestEducation_MultiByteText(t *testing.T) {
	got := Education("Diplôme: Master of Science, Université de Montréal")
	require.Len(t, got, 1)
	assert.Equal(t, "Diplôme: Master Of Science, Université De Montréal", got[0])
}
