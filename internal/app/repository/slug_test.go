package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "premium-wash", MakeSlug("Premium Wash"))
	assert.Equal(t, "wash-30", MakeSlug("Wash 30"))
	assert.Equal(t, "full-detailing", MakeSlug("  Full   Detailing  "))
	assert.Equal(t, "wax-polish", MakeSlug("Wax & Polish!"))
	assert.Equal(t, "", MakeSlug("!!!"))
}
