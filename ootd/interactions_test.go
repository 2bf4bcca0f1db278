package ootd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleMemberAdd(t *testing.T) {
	set, changed := ToggleMember([]string{}, "u1", true)

	assert.True(t, changed)
	assert.Equal(t, []string{"u1"}, set)
}

func TestToggleMemberAddIsIdempotent(t *testing.T) {
	set, changed := ToggleMember([]string{"u1"}, "u1", true)

	assert.False(t, changed)
	assert.Len(t, set, 1)
}

func TestToggleMemberRemove(t *testing.T) {
	set, changed := ToggleMember([]string{"u1", "u2"}, "u1", false)

	assert.True(t, changed)
	assert.Equal(t, []string{"u2"}, set)
}

func TestToggleMemberRemoveAbsentIsNoop(t *testing.T) {
	set, changed := ToggleMember([]string{"u2"}, "u1", false)

	assert.False(t, changed)
	assert.Equal(t, []string{"u2"}, set)
}

func TestToggleMemberDoubleLikeLeavesCardinality(t *testing.T) {
	set := []string{}
	set, _ = ToggleMember(set, "u1", true)
	set, _ = ToggleMember(set, "u1", true)

	assert.Len(t, set, 1)
}
