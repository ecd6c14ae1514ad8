package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID_Format(t *testing.T) {
	re := regexp.MustCompile(`^TRK-[A-Z0-9]{12}$`)
	for i := 0; i < 100; i++ {
		id := GenerateTrackingID()
		require.Regexp(t, re, id)
	}
}

func TestGenerateTrackingID_Unique(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := GenerateTrackingID()
		assert.False(t, seen[id], "identifiant dupliqué : %s", id)
		seen[id] = true
	}
}
