package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileModel_SavesChangedFields(t *testing.T) {
	services, sessions := newTestServices(t, 0)
	require.NoError(t, sessions.Login(context.Background(), testProfile()))

	m := NewProfileModel(context.Background(), services.ProfileService)
	m.Init()

	assert.Equal(t, "Asha Rao", m.inputs[profileOwnerName].Value())
	assert.Equal(t, "Pune", m.inputs[profileLocation].Value())

	m.inputs[profileLocation].SetValue("Mumbai")
	update := m.changes()
	assert.Nil(t, update.OwnerName)
	require.NotNil(t, update.Location)

	_, cmd := m.Update(keyPress("enter"))
	m.Update(runCmd(t, cmd))

	require.NotNil(t, m.notice)
	assert.False(t, m.isError)
	assert.Equal(t, "Profile Updated", m.notice.Title)
	assert.Equal(t, "Mumbai", m.profile.Location)

	state := sessions.State()
	assert.Equal(t, "Mumbai", state.User.Location)
	assert.Equal(t, "Rao Traders", state.User.BusinessName)
	assert.Contains(t, m.View(), "GST123 (read-only)")
}

func TestProfileModel_NothingChanged(t *testing.T) {
	services, sessions := newTestServices(t, 0)
	require.NoError(t, sessions.Login(context.Background(), testProfile()))

	m := NewProfileModel(context.Background(), services.ProfileService)
	m.Init()

	_, cmd := m.Update(keyPress("enter"))
	m.Update(runCmd(t, cmd))

	require.NotNil(t, m.notice)
	assert.True(t, m.isError)
	assert.Equal(t, "Nothing to update", m.notice.Title)
}

func TestProfileModel_LoggedOut(t *testing.T) {
	services, _ := newTestServices(t, 0)

	m := NewProfileModel(context.Background(), services.ProfileService)
	msg := runCmd(t, m.Init())

	notice, ok := msg.(noticeMsg)
	require.True(t, ok)
	assert.True(t, notice.isError)
	assert.Equal(t, "Session expired", notice.notice.Title)
}

func TestProfileModel_EscReturnsToDashboard(t *testing.T) {
	services, _ := newTestServices(t, 0)
	m := NewProfileModel(context.Background(), services.ProfileService)

	_, cmd := m.Update(keyPress("esc"))

	assert.Equal(t, NavigateTo{Page: pageDashboard}, runCmd(t, cmd))
}
