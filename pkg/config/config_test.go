package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetWithDefaults(t *testing.T) {
	Set("test.name", "luvo")
	Set("test.empty", "")

	assert.Equal(t, "luvo", GetString("test.name"))
	assert.Equal(t, "fallback", GetString("test.empty", "fallback"))
	assert.Equal(t, "fallback", GetString("test.missing", "fallback"))
	assert.Equal(t, 0, GetInt("test.missing"))
}

func TestGetDuration(t *testing.T) {
	Set("test.delay", "300ms")
	Set("test.seconds", "60")
	Set("test.int", 90*time.Second)

	assert.Equal(t, 300*time.Millisecond, GetDuration("test.delay"))
	assert.Equal(t, time.Minute, GetDuration("test.seconds"))
	assert.Equal(t, 90*time.Second, GetDuration("test.int"))
	assert.Equal(t, 500*time.Millisecond, GetDuration("test.missing", "500ms"))
}

func TestGetStringSlice(t *testing.T) {
	Set("test.urls", " https://a.example/v1, ,https://b.example/v1 ")

	assert.Equal(t, []string{"https://a.example/v1", "https://b.example/v1"}, GetStringSlice("test.urls"))
	assert.Nil(t, GetStringSlice("test.none"))
}

func TestEnvReadsEnvironment(t *testing.T) {
	t.Setenv("LUVO_TEST_VALUE", "from-env")

	assert.Equal(t, "from-env", Env("LUVO_TEST_VALUE", "default"))
	assert.Equal(t, "default", Env("LUVO_TEST_UNSET", "default"))
}
