package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProcessOptions(t *testing.T) {
	opts := DefaultProcessOptions()
	assert.True(t, opts.Deduplicate, "Deduplication should be enabled by default")
	assert.True(t, opts.FilterStopwords, "Stopword filtering should be enabled by default")
}
