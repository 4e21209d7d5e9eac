package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/models"
)

func TestLookupBusinessName_GST123(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.RegisterSignup(ctx, models.SignupRecord{
		RegistrationNo: "GST123",
		BusinessName:   "Acme",
	}))

	name, ok, err := s.LookupBusinessName(ctx, "GST123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Acme", name)

	_, ok, err = s.LookupBusinessName(ctx, "gst123")
	require.NoError(t, err)
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok, err = s.LookupBusinessName(ctx, " GST123 ")
	require.NoError(t, err)
	assert.False(t, ok, "lookup does not trim")
}

func TestRegisterSignup_DuplicatesFirstWins(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	require.NoError(t, s.RegisterSignup(ctx, models.SignupRecord{RegistrationNo: "GST1", BusinessName: "First"}))
	require.NoError(t, s.RegisterSignup(ctx, models.SignupRecord{RegistrationNo: "GST2", BusinessName: "Other"}))
	require.NoError(t, s.RegisterSignup(ctx, models.SignupRecord{RegistrationNo: "GST1", BusinessName: "Second"}))

	records, err := s.Signups(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Second", records[2].BusinessName)

	name, ok, err := s.LookupBusinessName(ctx, "GST1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "First", name)

	raw, err := kv.Get(ctx, SignupsKey)
	require.NoError(t, err)
	var persisted []map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 3)
	assert.Equal(t, "GST1", persisted[0]["registrationNo"])
	assert.Contains(t, persisted[0], "password")
}

func TestFindSignup_ReturnsFullRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	rec := models.SignupRecord{
		OwnerName:      "Asha",
		BusinessName:   "Rao Traders",
		RegistrationNo: "GST9",
		Password:       "hash",
	}
	require.NoError(t, s.RegisterSignup(ctx, rec))

	got, ok, err := s.FindSignup(ctx, "GST9")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestSignups_MissingOrMalformed(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	records, err := s.Signups(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, kv.Set(ctx, SignupsKey, "not json"))
	records, err = s.Signups(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, kv.Set(ctx, SignupsKey, "null"))
	records, err = s.Signups(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSignups_ReadsLegacyDirectory(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	legacy := `[{"ownerName":"Ravi","businessName":"Ravi Steel","email":"r@x.in","phone":"1",` +
		`"registrationNo":"27AAAAA0000A1Z5","location":"Mumbai","password":"plaintext1"}]`
	require.NoError(t, kv.Set(ctx, SignupsKey, legacy))

	rec, ok, err := s.FindSignup(ctx, "27AAAAA0000A1Z5")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ravi Steel", rec.BusinessName)
	assert.Equal(t, "plaintext1", rec.Password)
}

func TestRegisterSignup_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	kv.FailWith(store.ErrStoreUnavailable)

	err := s.RegisterSignup(ctx, models.SignupRecord{RegistrationNo: "X"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)

	_, _, err = s.LookupBusinessName(ctx, "X")
	assert.ErrorIs(t, err, ErrLoad)
}
