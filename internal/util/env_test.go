package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github/chapool/agent-tipjar/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TIPJAR_TEST_STRING", "hello")
	assert.Equal(t, "hello", util.GetEnv("TIPJAR_TEST_STRING", "default"))
	assert.Equal(t, "default", util.GetEnv("TIPJAR_TEST_STRING_UNSET", "default"))
}

func TestGetEnvAsTypes(t *testing.T) {
	t.Setenv("TIPJAR_TEST_INT", "42")
	t.Setenv("TIPJAR_TEST_BOOL", "true")
	t.Setenv("TIPJAR_TEST_DURATION", "250ms")
	t.Setenv("TIPJAR_TEST_BROKEN", "not-a-number")

	assert.Equal(t, 42, util.GetEnvAsInt("TIPJAR_TEST_INT", 1))
	assert.Equal(t, int64(42), util.GetEnvAsInt64("TIPJAR_TEST_INT", 1))
	assert.Equal(t, 7, util.GetEnvAsInt("TIPJAR_TEST_BROKEN", 7))
	assert.True(t, util.GetEnvAsBool("TIPJAR_TEST_BOOL", false))
	assert.InDelta(t, 42.0, util.GetEnvAsFloat("TIPJAR_TEST_INT", 0), 0.0001)
	assert.Equal(t, 250*time.Millisecond, util.GetEnvAsDuration("TIPJAR_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, util.GetEnvAsDuration("TIPJAR_TEST_BROKEN", time.Second))
}

func TestGetEnvAsStringArr(t *testing.T) {
	t.Setenv("TIPJAR_TEST_ARR", "1, 5 ,,10")
	assert.Equal(t, []string{"1", "5", "10"}, util.GetEnvAsStringArr("TIPJAR_TEST_ARR", nil))
	assert.Equal(t, []string{"a"}, util.GetEnvAsStringArr("TIPJAR_TEST_ARR_UNSET", []string{"a"}))

	t.Setenv("TIPJAR_TEST_ARR_SEP", "a|b")
	assert.Equal(t, []string{"a", "b"}, util.GetEnvAsStringArr("TIPJAR_TEST_ARR_SEP", nil, "|"))
}

func TestGetEnvEnum(t *testing.T) {
	t.Setenv("TIPJAR_TEST_ENUM", "dark")
	assert.Equal(t, "dark", util.GetEnvEnum("TIPJAR_TEST_ENUM", "light", []string{"light", "dark"}))

	t.Setenv("TIPJAR_TEST_ENUM", "neon")
	assert.Panics(t, func() {
		util.GetEnvEnum("TIPJAR_TEST_ENUM", "light", []string{"light", "dark"})
	})
}
