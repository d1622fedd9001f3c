package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/segmentio/analytics-go/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

type dossierGenerator interface {
	Generate(ctx context.Context, profile models.EntityProfile, entityType models.EntityType) models.ResearchDossier
}

type historyWriter interface {
	AppendHistory(ctx context.Context, record models.CreateHistoryRecord) (uuid.UUID, error)
}

type ResearchUsecase struct {
	generator         dossierGenerator
	historyRepository historyWriter
}

// GenerateResearch always returns a dossier once the input is valid. When identity is set the dossier is
// also saved to that user's history; a failed save is logged and only leaves HistoryId empty.
func (u *ResearchUsecase) GenerateResearch(
	ctx context.Context,
	request models.ResearchRequest,
	identity *models.Identity,
) (models.ResearchResult, error) {
	if request.Profile.IsEmpty() {
		return models.ResearchResult{}, models.ErrEntityInfoRequired
	}
	if !request.EntityType.IsValid() {
		request.EntityType = models.EntityTypeAcademic
	}

	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"ResearchUsecase.GenerateResearch",
		trace.WithAttributes(
			attribute.String("entity_type", string(request.EntityType)),
			attribute.Bool("authenticated", identity != nil)))
	defer span.End()

	dossier := u.generator.Generate(ctx, request.Profile, request.EntityType)
	result := models.ResearchResult{Dossier: dossier}

	utils.TrackEvent(ctx, utils.AnalyticsResearchGenerated, analytics.NewProperties().
		Set("entity_type", string(dossier.EntityType)).
		Set("fallback", dossier.Fallback).
		Set("authenticated", identity != nil))

	if identity == nil {
		return result, nil
	}

	historyId, err := u.historyRepository.AppendHistory(ctx, models.CreateHistoryRecord{
		UserId:  identity.UserId,
		Profile: request.Profile,
		Dossier: dossier,
	})
	if err != nil {
		utils.MetricHistoryWriteFailures.Inc()
		utils.LogAndReportSentryError(ctx, errors.Wrapf(err,
			"could not save research on %s to the history of user %s", request.Profile.FullName, identity.UserId))
		return result, nil
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "research saved to history",
		"history_id", historyId.String(),
		"user_id", identity.UserId.String())
	result.HistoryId = &historyId
	return result, nil
}
