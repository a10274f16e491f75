package codex_test

import (
	"strconv"
	"strings"
	"testing"

	"fueltrack/internal/codex"

	"github.com/stretchr/testify/assert"
)

func TestEncode_Deterministic(t *testing.T) {
	c := codex.New("secret")

	assert.Equal(t, c.Encode(1001), c.Encode(1001))
}

func TestEncode_DistinctPerUser(t *testing.T) {
	c := codex.New("secret")

	assert.NotEqual(t, c.Encode(1001), c.Encode(1002))
}

func TestEncode_DistinctPerKey(t *testing.T) {
	assert.NotEqual(t, codex.New("a").Encode(1001), codex.New("b").Encode(1001))
}

func TestEncode_PathSafe(t *testing.T) {
	c := codex.New("secret")

	token := c.Encode(1001)
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "=")
}

func TestEncode_HidesRawID(t *testing.T) {
	c := codex.New("secret")

	for _, id := range []int64{1, 42, 1001} {
		token := c.Encode(id)
		assert.False(t, strings.Contains(token, strconv.FormatInt(id, 10)) && len(token) < 8,
			"token must not be the raw id")
		assert.NotEqual(t, strconv.FormatInt(id, 10), token)
	}
}
