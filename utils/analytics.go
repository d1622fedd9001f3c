package utils

import (
	"context"

	"github.com/segmentio/analytics-go/v3"
)

const anonymousAnalyticsId = "anonymous"

const (
	AnalyticsEntityVerified    = "Entity Verified"
	AnalyticsResearchGenerated = "Research Generated"
	AnalyticsUserRegistered    = "User Registered"
	AnalyticsUserLoggedIn      = "User Logged In"
)

// TrackEvent is a no-op when no segment client is stored in the context.
func TrackEvent(ctx context.Context, event string, properties analytics.Properties) {
	client, found := SegmentClientFromContext(ctx)
	if !found {
		return
	}

	track := analytics.Track{
		Event:      event,
		Properties: properties,
	}
	if identity, ok := IdentityFromContext(ctx); ok {
		track.UserId = identity.UserId.String()
	} else {
		track.AnonymousId = anonymousAnalyticsId
	}

	if err := client.Enqueue(track); err != nil {
		LoggerFromContext(ctx).WarnContext(ctx, "Could not enqueue analytics event", "event", event, "error", err.Error())
	}
}
