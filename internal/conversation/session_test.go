package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerCreateAndGet(t *testing.T) {
	manager := NewManager()

	session := manager.Create()
	assert.NotEmpty(t, session.ID)
	assert.Empty(t, session.History)

	got, err := manager.Get(session.ID)
	assert.NoError(t, err)
	assert.Same(t, session, got)

	_, err = manager.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerBeginEnforcesSingleTurn(t *testing.T) {
	manager := NewManager()
	session := manager.Create()

	_, err := manager.Begin(session.ID)
	assert.NoError(t, err)

	_, err = manager.Begin(session.ID)
	assert.ErrorIs(t, err, ErrTurnInFlight)

	manager.End(session.ID)
	_, err = manager.Begin(session.ID)
	assert.NoError(t, err)
}

func TestManagerClose(t *testing.T) {
	manager := NewManager()
	session := manager.Create()

	manager.Close(session.ID)
	_, err := manager.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
