package usecases

import (
	"context"

	"github.com/segmentio/analytics-go/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

type entityVerifier interface {
	Verify(ctx context.Context, query models.EntityQuery) (models.VerifiedEntity, error)
}

type VerificationUsecase struct {
	verifier entityVerifier
}

// Verify only errors on missing input. Completion problems come back as a failed verification.
func (u *VerificationUsecase) Verify(ctx context.Context, query models.EntityQuery) (models.VerifiedEntity, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"VerificationUsecase.Verify",
		trace.WithAttributes(attribute.String("entity_type", string(query.EntityType))))
	defer span.End()

	entity, err := u.verifier.Verify(ctx, query)
	if err != nil {
		return models.VerifiedEntity{}, err
	}

	utils.TrackEvent(ctx, utils.AnalyticsEntityVerified, analytics.NewProperties().
		Set("entity_type", string(query.EntityType)).
		Set("status", string(entity.VerificationStatus)).
		Set("confidence_score", entity.ConfidenceScore))

	return entity, nil
}
