package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/kost"
	"kostera/internal/domain/tenant"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/markdown"
)

// PublicKostDTO is the storefront view of a branch. No tenant internals
// leak through this surface. DescriptionHTML is the markdown description
// rendered and sanitized for direct embedding.
type PublicKostDTO struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
}

type PublicRoomDTO struct {
	RoomNumber string `json:"room_number"`
	Price      uint64 `json:"price"`
}

type StorefrontDTO struct {
	TenantName string          `json:"tenant_name"`
	Kosts      []PublicKostDTO `json:"kosts"`
	Rooms      []PublicRoomDTO `json:"available_rooms"`
}

// GetStorefrontUseCase serves the public listing for a tenant slug. Only
// active tenants are visible; suspended ones disappear from the storefront.
type GetStorefrontUseCase struct {
	tenantRepo tenant.TenantRepository
	kostRepo   kost.KostRepository
	roomRepo   kost.RoomRepository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetStorefrontUseCase(
	tenantRepo tenant.TenantRepository,
	kostRepo kost.KostRepository,
	roomRepo kost.RoomRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetStorefrontUseCase {
	return &GetStorefrontUseCase{
		tenantRepo: tenantRepo,
		kostRepo:   kostRepo,
		roomRepo:   roomRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetStorefrontUseCase) Execute(ctx context.Context, slug string) (*StorefrontDTO, error) {
	t, err := uc.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !t.IsActive() {
		return nil, tenant.ErrTenantNotFound
	}
	return uc.buildStorefront(ctx, t)
}

// ExecuteByTenantID serves the same listing to API-key callers, whose
// tenant is fixed by the key instead of a slug.
func (uc *GetStorefrontUseCase) ExecuteByTenantID(ctx context.Context, tenantID uint) (*StorefrontDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !t.IsActive() {
		return nil, tenant.ErrTenantNotFound
	}
	return uc.buildStorefront(ctx, t)
}

func (uc *GetStorefrontUseCase) buildStorefront(ctx context.Context, t *tenant.Tenant) (*StorefrontDTO, error) {
	kosts, err := uc.kostRepo.ListByTenant(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list kosts for storefront", "error", err, "tenant_id", t.ID())
		return nil, fmt.Errorf("failed to list kosts: %w", err)
	}
	rooms, err := uc.roomRepo.ListAvailableByTenant(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list rooms for storefront", "error", err, "tenant_id", t.ID())
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	result := &StorefrontDTO{
		TenantName: t.Name(),
		Kosts:      make([]PublicKostDTO, 0, len(kosts)),
		Rooms:      make([]PublicRoomDTO, 0, len(rooms)),
	}
	for _, k := range kosts {
		descHTML, err := uc.renderer.Render(k.Description())
		if err != nil {
			uc.logger.Warnw("failed to render kost description", "error", err, "kost_id", k.ID())
			descHTML = ""
		}
		result.Kosts = append(result.Kosts, PublicKostDTO{
			Name:            k.Name(),
			Address:         k.Address(),
			Description:     k.Description(),
			DescriptionHTML: descHTML,
		})
	}
	for _, room := range rooms {
		result.Rooms = append(result.Rooms, PublicRoomDTO{
			RoomNumber: room.RoomNumber(),
			Price:      room.Price(),
		})
	}
	return result, nil
}
