package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNormalizesFloatArtifacts(t *testing.T) {
	assert.Equal(t, "7", Key(7))
	assert.Equal(t, "7", Key("7"))
	assert.Equal(t, "7", Key("7.0"))
	assert.Equal(t, "7", Key(7.0))
}

func TestKeyLeavesNonNumericIdentifiersAlone(t *testing.T) {
	assert.Equal(t, "Night 1", Key("Night 1"))
	assert.Equal(t, "Night 1.0", Key("Night 1.0"), "only pure digit prefixes are float artifacts")
	assert.Equal(t, "7.5", Key("7.5"))
	assert.Equal(t, "7.00", Key("7.00"))
	assert.Equal(t, ".0", Key(".0"))
	assert.Equal(t, "", Key(""))
}

func TestKeyIsIdempotent(t *testing.T) {
	for _, id := range []interface{}{7, "7", "7.0", 7.0, "Night 1", "7.5", ""} {
		once := Key(id)
		assert.Equal(t, once, Key(once))
	}
}

func TestKeyTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "7", Key(" 7.0 "))
}
