package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spiro/pipeline"
)

// TestParams_Defaults verifies absent keys fall back without recording
// an error.
func TestParams_Defaults(t *testing.T) {
	p := pipeline.NewParams(map[string]string{})

	assert.Equal(t, 1.5, p.Float("radius", 1.5))
	assert.Equal(t, 7, p.Int("sides", 7))
	assert.True(t, p.Bool("inside", true))
	assert.Equal(t, "up", p.String("direction", "up"))
	assert.NoError(t, p.Err(), "absent keys are not errors")
}

// TestParams_Parsing covers each getter's happy path, including trimmed
// whitespace.
func TestParams_Parsing(t *testing.T) {
	p := pipeline.NewParams(map[string]string{
		"radius": " 42.5 ",
		"sides":  "6",
		"inside": "yes",
		"label":  "  spin  ",
	})

	assert.Equal(t, 42.5, p.Float("radius", 0))
	assert.Equal(t, 6, p.Int("sides", 0))
	assert.True(t, p.Bool("inside", false))
	assert.Equal(t, "spin", p.String("label", ""))
	assert.NoError(t, p.Err())
}

// TestParams_BoolSpellings accepts the INI boolean spellings.
func TestParams_BoolSpellings(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "yes": true, "on": true, "1": true, "TRUE": true,
		"false": false, "no": false, "off": false, "0": false,
	} {
		p := pipeline.NewParams(map[string]string{"flag": raw})
		assert.Equal(t, want, p.Bool("flag", !want), "spelling %q", raw)
		assert.NoError(t, p.Err())
	}
}

// TestParams_RecordsFirstError verifies a malformed value surfaces
// ErrBadParam with key and value context, and that only the first
// failure is kept.
func TestParams_RecordsFirstError(t *testing.T) {
	p := pipeline.NewParams(map[string]string{
		"radius": "abc",
		"sides":  "not-an-int",
	})

	assert.Equal(t, 5.0, p.Float("radius", 5.0), "malformed value falls back to the default")
	assert.Equal(t, 3, p.Int("sides", 3))

	err := p.Err()
	assert.ErrorIs(t, err, pipeline.ErrBadParam)
	assert.Contains(t, err.Error(), `"radius"`, "first broken key is reported")
	assert.Contains(t, err.Error(), `"abc"`)
}

// TestParams_BadBool verifies an unrecognized boolean spelling errors.
func TestParams_BadBool(t *testing.T) {
	p := pipeline.NewParams(map[string]string{"inside": "maybe"})

	assert.True(t, p.Bool("inside", true))
	assert.ErrorIs(t, p.Err(), pipeline.ErrBadParam)
}
