package ports

import (
	"context"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

// BookingNotifier delivers lifecycle notifications. Implementations must
// never fail the calling transition; delivery errors are logged and dropped.
type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, tutor *domain.User, b *domain.Booking)
	NotifyBookingAccepted(ctx context.Context, student *domain.User, b *domain.Booking)
	NotifyBookingDeclined(ctx context.Context, student *domain.User, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking)
}
