package services

import (
	"context"

	"recircleBack/internal/models"
)

// ItemStore is the persistence surface ItemService needs. It is
// satisfied by repositories.ItemRepository.
type ItemStore interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetItems(ctx context.Context, limit, offset int) ([]models.Item, error)
	GetAvailableItemsByOwner(ctx context.Context, ownerID int) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItemImage(ctx context.Context, id int, image string) (models.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

type ItemService struct {
	ItemRepo ItemStore
}

// CreateItem persists a new listing. The owner is always the
// authenticated requester, whatever the payload says.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int, req models.ItemRequest) (models.Item, error) {
	if errs := req.Validate(); errs != nil {
		return models.Item{}, errs
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
		Category:    req.Category,
		ItemType:    req.ItemType,
		Location:    req.Location,
		IsAvailable: isAvailable,
	}
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) GetItems(ctx context.Context, limit, offset int) ([]models.Item, error) {
	return s.ItemRepo.GetItems(ctx, limit, offset)
}

func (s *ItemService) GetAvailableItemsByOwner(ctx context.Context, ownerID int) ([]models.Item, error) {
	return s.ItemRepo.GetAvailableItemsByOwner(ctx, ownerID)
}

// UpdateItem applies a partial update. Only the owner may write.
func (s *ItemService) UpdateItem(ctx context.Context, id, requesterID int, req models.ItemUpdateRequest) (models.Item, error) {
	if errs := req.Validate(); errs != nil {
		return models.Item{}, errs
	}

	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if item.OwnerID != requesterID {
		return models.Item{}, models.ErrNotOwner
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id, requesterID int) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.OwnerID != requesterID {
		return models.ErrNotOwner
	}
	return s.ItemRepo.DeleteItem(ctx, id)
}

// AttachImage records the public path of an uploaded item image.
func (s *ItemService) AttachImage(ctx context.Context, id, requesterID int, image string) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if item.OwnerID != requesterID {
		return models.Item{}, models.ErrNotOwner
	}
	return s.ItemRepo.UpdateItemImage(ctx, id, image)
}
