package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSubscriptionMapper_PreferencesJSON(t *testing.T) {
	in := &entity.Subscription{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		MasjidID: uuid.New(),
		Preferences: entity.SubscriptionPreferences{
			MutedPrayers: []string{"fajr", "isha"},
			WakeOnSilent: true,
		},
	}

	m, err := fromSubscriptionDomain(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mutedPrayers":["fajr","isha"],"wakeOnSilent":true}`, string(m.Preferences))

	out, err := toSubscriptionDomain(m)
	require.NoError(t, err)
	assert.Equal(t, in.Preferences, out.Preferences)
}

func TestSubscriptionMapper_EmptyPreferences(t *testing.T) {
	raw, err := marshalPreferences(entity.SubscriptionPreferences{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mutedPrayers":[],"wakeOnSilent":false}`, string(raw))

	out, err := toSubscriptionDomain(&model.SubscriptionModel{})
	require.NoError(t, err)
	assert.Empty(t, out.Preferences.MutedPrayers)
}

func TestSubscriptionMapper_CorruptPreferences(t *testing.T) {
	_, err := toSubscriptionDomain(&model.SubscriptionModel{Preferences: datatypes.JSON(`{"mutedPrayers":`)})
	assert.Error(t, err)
}

func TestSubscriptionMapper_ListSkipsCorruptRows(t *testing.T) {
	var logs bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	good := &model.SubscriptionModel{ID: uuid.New(), UserID: uuid.New(), Preferences: datatypes.JSON(`{"mutedPrayers":["isha"]}`)}
	corrupt := &model.SubscriptionModel{ID: uuid.New(), UserID: uuid.New(), Preferences: datatypes.JSON(`{"mutedPrayers":`)}

	out := toSubscriptionDomains(ctx, []*model.SubscriptionModel{corrupt, good})

	require.Len(t, out, 1)
	assert.Equal(t, good.ID, out[0].ID)
	assert.Equal(t, []string{"isha"}, out[0].Preferences.MutedPrayers)
	assert.Contains(t, logs.String(), corrupt.ID.String())
}
