package raw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAndAccessors(t *testing.T) {
	doc := `{
		"venue": "Wrigley Field",
		"inning": 3,
		"obp": 0.285,
		"ip": "6.2",
		"got_on_base": true,
		"batter": {"first_name": "Yandy", "last_name": "Díaz"},
		"inning_list": [{"inning": 1}, "junk", {"inning": 2}],
		"location": [2.5, 1.0]
	}`

	rec, err := Decode(strings.NewReader(doc))
	assert.NoError(t, err)

	assert.Equal(t, "Wrigley Field", rec.String("venue", "Unknown"))
	assert.Equal(t, 3, rec.Int("inning", 0))
	assert.Equal(t, 0.285, rec.Float("obp", 0))
	assert.Equal(t, 6.2, rec.Float("ip", 0))
	assert.True(t, rec.Bool("got_on_base", false))
	assert.Equal(t, "Yandy", rec.Child("batter").String("first_name", ""))
	assert.Len(t, rec.Records("inning_list"), 2, "non-mapping entries are skipped")
	assert.Equal(t, []float64{2.5, 1.0}, rec.Pair("location"))
}

func TestAccessorsDefaultOnMissingFields(t *testing.T) {
	rec := Record{}

	assert.Equal(t, "Unknown", rec.String("venue", "Unknown"))
	assert.Equal(t, 0, rec.Int("inning", 0))
	assert.Equal(t, 0.0, rec.Float("obp", 0))
	assert.False(t, rec.Bool("got_on_base", false))
	assert.Nil(t, rec.FloatPtr("speed"))
	assert.Nil(t, rec.Child("batter"))
	assert.Nil(t, rec.Records("inning_list"))
	assert.Nil(t, rec.Pair("location"))
	assert.False(t, rec.Has("anything"))
}

func TestAccessorsDefaultOnMistypedFields(t *testing.T) {
	rec := Record{
		"venue":    42.0,
		"inning":   "third",
		"location": []any{"x", "y"},
	}

	assert.Equal(t, "Unknown", rec.String("venue", "Unknown"))
	assert.Equal(t, 9, rec.Int("inning", 9))
	assert.Nil(t, rec.Pair("location"))

	// nil-safe chaining on absent children
	assert.Equal(t, "", rec.Child("batter").String("first_name", ""))
}
