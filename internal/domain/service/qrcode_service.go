package service

import "github.com/google/uuid"

// QRCodeService generates and parses favorite-onboarding QR codes.
// Owners print the code; customers scan it to favorite the restaurant.
type QRCodeService interface {
	// GenerateFavoriteQR renders a PNG QR code embedding the restaurant id.
	GenerateFavoriteQR(restaurantID uuid.UUID) ([]byte, error)

	// ParseFavoriteQR extracts the restaurant id from scanned QR payload data.
	ParseFavoriteQR(qrData string) (uuid.UUID, error)
}
