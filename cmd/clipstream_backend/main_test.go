package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfig_WildcardDropsCredentials(t *testing.T) {
	c := corsConfig("*")
	assert.True(t, c.AllowAllOrigins)
	assert.False(t, c.AllowCredentials)
	assert.Empty(t, c.AllowOrigins)
}

func TestCorsConfig_ExplicitOriginAllowsCredentials(t *testing.T) {
	c := corsConfig("https://app.clipstream.example")
	assert.False(t, c.AllowAllOrigins)
	assert.True(t, c.AllowCredentials)
	assert.Equal(t, []string{"https://app.clipstream.example"}, c.AllowOrigins)
}
