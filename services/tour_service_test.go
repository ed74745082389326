package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"tourbooking/dto"
	"tourbooking/testutil"
)

func TestUpdateKeepsPopupDiscount(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tours := NewTourService(TourServiceOptions{DB: db})
	announcements := NewAnnouncementService(AnnouncementServiceOptions{DB: db})
	tour := testutil.CreateTour(t, db, "elephant-sanctuary", 2500)

	popup, err := announcements.Create(ctx, dto.AnnouncementRequest{
		Type: "popup", PopupType: "discount", MessageEn: "sale",
		DiscountTourID: uintPtr(tour.ID), DiscountPercentage: intPtr(30), IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	edit := dto.TourRequest{TitleEn: "Elephant Sanctuary", Price: decimal.NewFromInt(2700)}
	updated, err := tours.Update(ctx, tour.ID, edit)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsDiscountActive || updated.DiscountPercentage != 30 {
		t.Fatalf("discount after edit: active=%v pct=%d", updated.IsDiscountActive, updated.DiscountPercentage)
	}
	if !updated.Price.Equal(decimal.NewFromInt(2700)) {
		t.Errorf("price = %s", updated.Price)
	}

	if _, err := announcements.Deactivate(ctx, popup.ID); err != nil {
		t.Fatal(err)
	}
	edit.IsDiscountActive = true
	edit.DiscountPercentage = 5
	updated, err = tours.Update(ctx, tour.ID, edit)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsDiscountActive || updated.DiscountPercentage != 5 {
		t.Errorf("manual discount: active=%v pct=%d", updated.IsDiscountActive, updated.DiscountPercentage)
	}
}

func TestUpdateWithoutPopupClearsDiscount(t *testing.T) {
	db := testutil.NewDB(t)
	tours := NewTourService(TourServiceOptions{DB: db})
	tour := testutil.CreateTour(t, db, "night-bazaar", 400)
	db.Model(tour).Updates(map[string]interface{}{"is_discount_active": true, "discount_percentage": 15})

	updated, err := tours.Update(context.Background(), tour.ID, dto.TourRequest{TitleEn: "Night Bazaar"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.IsDiscountActive {
		t.Error("discount kept without an active popup")
	}
}
