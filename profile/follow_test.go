package profile

import (
	"testing"

	"vesture/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoUsers() (models.User, models.User) {
	a := models.User{UserID: "uA", Username: "alice", Followers: []string{}, Following: []string{}}
	b := models.User{UserID: "uB", Username: "bob", Followers: []string{}, Following: []string{}}
	return a, b
}

func TestApplyFollowUpdatesBothSides(t *testing.T) {
	a, b := twoUsers()

	require.NoError(t, ApplyFollow(&a, &b))

	assert.Equal(t, []string{"uB"}, a.Following)
	assert.Equal(t, 1, a.FollowingCount)
	assert.Equal(t, []string{"uA"}, b.Followers)
	assert.Equal(t, 1, b.FollowersCount)
	// the other direction is untouched
	assert.Empty(t, a.Followers)
	assert.Empty(t, b.Following)
}

func TestApplyFollowRejectsSelf(t *testing.T) {
	a, _ := twoUsers()

	err := ApplyFollow(&a, &a)

	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Empty(t, a.Following)
	assert.Zero(t, a.FollowingCount)
}

func TestApplyFollowRejectsDuplicate(t *testing.T) {
	a, b := twoUsers()
	require.NoError(t, ApplyFollow(&a, &b))

	err := ApplyFollow(&a, &b)

	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	assert.Equal(t, 1, a.FollowingCount)
	assert.Equal(t, 1, b.FollowersCount)
}

func TestFollowThenUnfollowRestoresState(t *testing.T) {
	a, b := twoUsers()

	require.NoError(t, ApplyFollow(&a, &b))
	require.NoError(t, ApplyUnfollow(&a, &b))

	assert.Empty(t, a.Following)
	assert.Empty(t, b.Followers)
	assert.Zero(t, a.FollowingCount)
	assert.Zero(t, b.FollowersCount)
}

func TestApplyUnfollowWithoutRelationship(t *testing.T) {
	a, b := twoUsers()

	err := ApplyUnfollow(&a, &b)

	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestApplyUnfollowNeverGoesNegative(t *testing.T) {
	// Stored counts can drift; recomputing from the lists clamps them.
	a := models.User{UserID: "uA", Following: []string{"uB"}, FollowingCount: 0}
	b := models.User{UserID: "uB", Followers: []string{"uA"}, FollowersCount: 0}

	require.NoError(t, ApplyUnfollow(&a, &b))

	assert.Zero(t, a.FollowingCount)
	assert.Zero(t, b.FollowersCount)
}

func TestApplyFollowKeepsOtherRelationships(t *testing.T) {
	a, b := twoUsers()
	a.Following = []string{"uC"}
	a.FollowingCount = 1
	b.Followers = []string{"uD"}
	b.FollowersCount = 1

	require.NoError(t, ApplyFollow(&a, &b))

	assert.ElementsMatch(t, []string{"uC", "uB"}, a.Following)
	assert.Equal(t, 2, a.FollowingCount)
	assert.ElementsMatch(t, []string{"uD", "uA"}, b.Followers)
	assert.Equal(t, 2, b.FollowersCount)
}
