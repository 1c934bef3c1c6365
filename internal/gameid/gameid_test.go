package gameid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	id, err := Parse("2025-09-14-TB-CHC-1")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), id.Date)
	assert.Equal(t, "TB", id.AwayCode)
	assert.Equal(t, "CHC", id.HomeCode)
	assert.Equal(t, 1, id.GameNumber)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"too few segments":    "not-a-game-id",
		"empty string":        "",
		"non-integer number":  "2025-09-14-TB-CHC-one",
		"invalid date":        "2025-13-40-TB-CHC-1",
		"non-positive number": "2025-09-14-TB-CHC-0",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)

			var malformed *MalformedIdentifierError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"2025-09-14-TB-CHC-1",
		"2017-11-01-HOU-LAD-1",
		"2024-07-04-NYY-BOS-2",
	}

	for _, s := range inputs {
		id, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, id.String(), "format(parse(s)) should reproduce s")

		again, err := Parse(id.String())
		assert.NoError(t, err)
		assert.Equal(t, id, again, "parse(format(id)) should reproduce id")
	}
}
