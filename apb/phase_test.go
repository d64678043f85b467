package apb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePhase(sel bool, enable bool, ready bool) (sample BusSample) {
	sample = idleSample()
	sample.Sel = Known(sel)
	sample.Enable = Known(enable)
	sample.Ready = Known(ready)

	return
}

func TestClassifyTotality(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		sel    bool
		enable bool
		ready  bool
		phase  Phase
	}){
		{"idle", false, false, false, PHASE_IDLE},
		{"idle_ready", false, false, true, PHASE_IDLE},
		{"idle_enable", false, true, false, PHASE_IDLE},
		{"idle_enable_ready", false, true, true, PHASE_IDLE},
		{"setup", true, false, false, PHASE_SETUP},
		{"setup_ready", true, false, true, PHASE_SETUP},
		{"access_wait", true, true, false, PHASE_ACCESS_WAIT},
		{"access_last", true, true, true, PHASE_ACCESS_LAST},
	}

	for _, entry := range table {
		phase, ok := Classify(samplePhase(entry.sel, entry.enable, entry.ready))
		assert.True(ok, entry.name)
		assert.Equal(entry.phase, phase, entry.name)
	}
}

func TestClassifyUnknown(t *testing.T) {
	assert := assert.New(t)

	sample := samplePhase(true, true, true)
	sample.Sel = Unknown[bool]()
	_, ok := Classify(sample)
	assert.False(ok, "psel")

	sample = samplePhase(true, true, true)
	sample.Enable = Unknown[bool]()
	_, ok = Classify(sample)
	assert.False(ok, "penable")

	sample = samplePhase(true, true, true)
	sample.Ready = Unknown[bool]()
	_, ok = Classify(sample)
	assert.False(ok, "pready")
}

func TestLegalTransition(t *testing.T) {
	assert := assert.New(t)

	legal := map[Phase][]Phase{
		PHASE_IDLE:        {PHASE_IDLE, PHASE_SETUP},
		PHASE_SETUP:       {PHASE_ACCESS_WAIT, PHASE_ACCESS_LAST},
		PHASE_ACCESS_WAIT: {PHASE_ACCESS_WAIT, PHASE_ACCESS_LAST},
		PHASE_ACCESS_LAST: {PHASE_IDLE, PHASE_SETUP},
	}

	phases := []Phase{PHASE_IDLE, PHASE_SETUP, PHASE_ACCESS_WAIT, PHASE_ACCESS_LAST}
	for _, from := range phases {
		for _, to := range phases {
			expected := false
			for _, next := range legal[from] {
				if next == to {
					expected = true
				}
			}
			assert.Equal(expected, LegalTransition(from, to), "%v -> %v", from, to)
		}
	}
}

func TestPhaseString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("idle", PHASE_IDLE.String())
	assert.Equal("setup", PHASE_SETUP.String())
	assert.Equal("access.wait", PHASE_ACCESS_WAIT.String())
	assert.Equal("access.last", PHASE_ACCESS_LAST.String())
}
