// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"bytes"
	"slices"

	"nearbite/internal/domain/entity"
	"nearbite/internal/geo"

	"github.com/google/uuid"
)

// recipientResolver computes the recipient snapshot of a broadcast. It is a
// pure computation over already-loaded data; callers fetch the favorite pool
// and the origin candidates, the resolver only merges them.
type recipientResolver struct{}

func newRecipientResolver() *recipientResolver {
	return &recipientResolver{}
}

// Resolve merges the favorite pool and the nearby candidates into a
// deterministic snapshot:
//   - every active favoriter is included, distance not recorded
//   - a candidate within radiusKm of the restaurant is included as nearby
//     with the distance at broadcast time
//   - a user in both pools is recorded once, as favorite
//   - a restaurant without a valid coordinate targets favoriters only
//
// The result is sorted by user id so identical inputs yield identical
// snapshots.
func (r *recipientResolver) Resolve(
	messageID uuid.UUID,
	restaurant *entity.Restaurant,
	favoriterIDs []uuid.UUID,
	candidates []*entity.User,
	radiusKm int,
) []*entity.MessageRecipient {
	recipients := make([]*entity.MessageRecipient, 0, len(favoriterIDs))
	seen := make(map[uuid.UUID]struct{}, len(favoriterIDs))

	for _, userID := range favoriterIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		recipients = append(recipients, &entity.MessageRecipient{
			MessageID:     messageID,
			UserID:        userID,
			RecipientType: entity.RecipientTypeFavorite,
		})
	}

	if geo.ValidPoint(restaurant.Latitude, restaurant.Longitude) {
		origin := geo.Point(*restaurant.Latitude, *restaurant.Longitude)

		for _, candidate := range candidates {
			if _, ok := seen[candidate.ID]; ok {
				continue
			}
			if !geo.ValidPoint(candidate.OriginLatitude, candidate.OriginLongitude) {
				continue
			}

			distance := geo.DistanceKm(origin, geo.Point(*candidate.OriginLatitude, *candidate.OriginLongitude))
			if distance > float64(radiusKm) {
				continue
			}
			seen[candidate.ID] = struct{}{}

			recipients = append(recipients, &entity.MessageRecipient{
				MessageID:     messageID,
				UserID:        candidate.ID,
				RecipientType: entity.RecipientTypeNearby,
				DistanceKm:    &distance,
			})
		}
	}

	slices.SortFunc(recipients, func(a, b *entity.MessageRecipient) int {
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})

	return recipients
}
