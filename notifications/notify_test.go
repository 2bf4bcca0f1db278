package notifications

import (
	"testing"

	"vesture/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldNotify(t *testing.T) {
	tests := []struct {
		name  string
		actor string
		owner string
		want  bool
	}{
		{"different users", "u1", "u2", true},
		{"self-directed action", "u1", "u1", false},
		{"missing actor", "", "u2", false},
		{"missing owner", "u1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldNotify(tt.actor, tt.owner))
		})
	}
}

func TestBuildMessage(t *testing.T) {
	assert.Equal(t, "alice started following you", BuildMessage("alice", models.NotifFollow))
	assert.Equal(t, "alice liked your outfit", BuildMessage("alice", models.NotifLike))
	assert.Equal(t, "alice commented on your outfit", BuildMessage("alice", models.NotifComment))
	assert.Equal(t, "alice saved your outfit", BuildMessage("alice", models.NotifSave))
}
