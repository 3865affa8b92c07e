package handlers

import (
	"context"

	subdto "kostera/internal/application/subscription/dto"
	"kostera/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type getCurrentPlanUseCase interface {
	Execute(ctx context.Context, tenantID uint) (*subdto.CurrentPlanDTO, error)
}

type assignPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignPlanCommand) (*subdto.SubscriptionDTO, error)
}
