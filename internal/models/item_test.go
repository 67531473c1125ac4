package models

import (
	"strings"
	"testing"
)

func TestValidCategory(t *testing.T) {
	for _, category := range []string{CategoryTools, CategoryBooks, CategoryKids, CategoryHome, CategoryElectronics, CategorySports, CategoryOther} {
		if !ValidCategory(category) {
			t.Errorf("expected %q to be a valid category", category)
		}
	}
	if ValidCategory("FURNITURE") {
		t.Error("unexpected valid category FURNITURE")
	}
	if ValidCategory("tools") {
		t.Error("category values are upper case, lower case should not match")
	}
}

func TestItemRequestDefaults(t *testing.T) {
	req := ItemRequest{Title: "Cordless drill", Description: "Barely used"}

	if errs := req.Validate(); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if req.Category != CategoryOther {
		t.Errorf("expected default category %q, got %q", CategoryOther, req.Category)
	}
	if req.ItemType != ItemTypeGive {
		t.Errorf("expected default item type %q, got %q", ItemTypeGive, req.ItemType)
	}
}

func TestItemRequestInvalidChoices(t *testing.T) {
	req := ItemRequest{
		Title:       "Cordless drill",
		Description: "Barely used",
		Category:    "FURNITURE",
		ItemType:    "RENT",
	}

	errs := req.Validate()
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if errs["category"] == "" {
		t.Error("expected an error for unknown category")
	}
	if errs["item_type"] == "" {
		t.Error("expected an error for unknown item type")
	}
}

func TestItemRequestRequiredFields(t *testing.T) {
	errs := (&ItemRequest{}).Validate()
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if errs["title"] == "" {
		t.Error("expected an error for missing title")
	}
	if errs["description"] == "" {
		t.Error("expected an error for missing description")
	}
}

func TestItemRequestTitleTooLong(t *testing.T) {
	req := ItemRequest{Title: strings.Repeat("x", 201), Description: "d"}

	errs := req.Validate()
	if errs == nil || errs["title"] == "" {
		t.Fatal("expected a length error for title")
	}
}

func TestItemUpdateRequestPartial(t *testing.T) {
	if errs := (ItemUpdateRequest{}).Validate(); errs != nil {
		t.Fatalf("empty partial update should be valid, got %v", errs)
	}

	bad := "RENT"
	errs := ItemUpdateRequest{ItemType: &bad}.Validate()
	if errs == nil || errs["item_type"] == "" {
		t.Fatal("expected an error for unknown item type")
	}
}
