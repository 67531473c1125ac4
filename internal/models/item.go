package models

import (
	"strings"
	"time"
)

const (
	CategoryTools       = "TOOLS"
	CategoryBooks       = "BOOKS"
	CategoryKids        = "KIDS"
	CategoryHome        = "HOME"
	CategoryElectronics = "ELECTRONICS"
	CategorySports      = "SPORTS"
	CategoryOther       = "OTHER"
)

const (
	ItemTypeBorrow = "BORROW"
	ItemTypeGive   = "GIVE"
)

var itemCategories = map[string]bool{
	CategoryTools:       true,
	CategoryBooks:       true,
	CategoryKids:        true,
	CategoryHome:        true,
	CategoryElectronics: true,
	CategorySports:      true,
	CategoryOther:       true,
}

func ValidCategory(category string) bool {
	return itemCategories[category]
}

func ValidItemType(itemType string) bool {
	return itemType == ItemTypeBorrow || itemType == ItemTypeGive
}

type Item struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     int       `json:"-"`
	Owner       User      `json:"owner"`
	Category    string    `json:"category"`
	ItemType    string    `json:"item_type"`
	Image       *string   `json:"image"`
	Location    string    `json:"location"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemRequest is the create payload. The owner never comes from the
// client; it is taken from the authenticated requester.
type ItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ItemType    string `json:"item_type"`
	Location    string `json:"location"`
	IsAvailable *bool  `json:"is_available"`
}

// Validate fills in the enum defaults and reports field errors.
func (r *ItemRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "This field is required."
	} else if len(r.Title) > 200 {
		errs["title"] = "Ensure this field has no more than 200 characters."
	}
	if strings.TrimSpace(r.Description) == "" {
		errs["description"] = "This field is required."
	}
	if len(r.Location) > 100 {
		errs["location"] = "Ensure this field has no more than 100 characters."
	}

	if r.Category == "" {
		r.Category = CategoryOther
	} else if !ValidCategory(r.Category) {
		errs["category"] = "\"" + r.Category + "\" is not a valid choice."
	}

	if r.ItemType == "" {
		r.ItemType = ItemTypeGive
	} else if !ValidItemType(r.ItemType) {
		errs["item_type"] = "\"" + r.ItemType + "\" is not a valid choice."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type ItemUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ItemType    *string `json:"item_type"`
	Location    *string `json:"location"`
	IsAvailable *bool   `json:"is_available"`
}

func (r ItemUpdateRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errs["title"] = "This field may not be blank."
		} else if len(*r.Title) > 200 {
			errs["title"] = "Ensure this field has no more than 200 characters."
		}
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		errs["description"] = "This field may not be blank."
	}
	if r.Location != nil && len(*r.Location) > 100 {
		errs["location"] = "Ensure this field has no more than 100 characters."
	}
	if r.Category != nil && !ValidCategory(*r.Category) {
		errs["category"] = "\"" + *r.Category + "\" is not a valid choice."
	}
	if r.ItemType != nil && !ValidItemType(*r.ItemType) {
		errs["item_type"] = "\"" + *r.ItemType + "\" is not a valid choice."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
