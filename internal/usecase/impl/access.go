// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func loadMasjid(ctx context.Context, repo repository.MasjidRepository, masjidID uuid.UUID) (*entity.Masjid, error) {
	masjid, err := repo.FindMasjidByID(ctx, masjidID)
	if err != nil {
		if errors.Is(err, repository.ErrMasjidNotFound) {
			return nil, domainerrors.ErrMasjidNotFound
		}

		return nil, errors.Wrap(err, "failed to find masjid")
	}

	return masjid, nil
}

// ensureMasjidAdmin loads the masjid and checks that actorID manages it.
func ensureMasjidAdmin(ctx context.Context, repo repository.MasjidRepository, actorID, masjidID uuid.UUID) (*entity.Masjid, error) {
	masjid, err := loadMasjid(ctx, repo, masjidID)
	if err != nil {
		return nil, err
	}

	if masjid.AdminUserID != actorID {
		return nil, domainerrors.ErrForbidden.WithDetails("not the admin of this masjid")
	}

	return masjid, nil
}

func loadBroadcast(ctx context.Context, repo repository.BroadcastRepository, broadcastID uuid.UUID) (*entity.Broadcast, error) {
	broadcast, err := repo.FindBroadcastByID(ctx, broadcastID)
	if err != nil {
		if errors.Is(err, repository.ErrBroadcastNotFound) {
			return nil, domainerrors.ErrBroadcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find broadcast")
	}

	return broadcast, nil
}

// ensureSubscribed checks that userID follows masjidID.
func ensureSubscribed(ctx context.Context, repo repository.SubscriptionRepository, userID, masjidID uuid.UUID) error {
	_, err := repo.FindSubscriptionByUserAndMasjid(ctx, userID, masjidID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrNotSubscribed
		}

		return errors.Wrap(err, "failed to find subscription")
	}

	return nil
}

// listenerIdentity is the room identity of a subscriber.
func listenerIdentity(userID uuid.UUID) string {
	return "listener-" + userID.String()
}
