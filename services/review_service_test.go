package services

import (
	"context"
	"testing"

	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/testutil"
)

func TestReviewLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()
	tour := testutil.CreateTour(t, db, "doi-suthep", 1000)

	r1, err := svc.Submit(ctx, tour.ID, dto.CreateReviewRequest{AuthorName: "Ann", Rating: 5, Comment: "Great"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r1.IsApproved {
		t.Error("new review approved")
	}
	r2, _ := svc.Submit(ctx, tour.ID, dto.CreateReviewRequest{AuthorName: "Bo", Rating: 4})
	if _, err := svc.Submit(ctx, tour.ID, dto.CreateReviewRequest{AuthorName: "Cy", Rating: 1}); err != nil {
		t.Fatal(err)
	}

	if got := svc.Approved(ctx, tour.ID); len(got) != 0 {
		t.Fatalf("unapproved reviews visible: %d", len(got))
	}

	svc.Approve(ctx, r1.ID)
	svc.Approve(ctx, r2.ID)

	if got := svc.Approved(ctx, tour.ID); len(got) != 2 {
		t.Fatalf("approved = %d", len(got))
	}
	sum := svc.Summary(ctx, tour.ID)
	if sum.Count != 2 || sum.Average != 4.5 {
		t.Errorf("summary = %+v", sum)
	}

	pending, _ := svc.List(ctx, true)
	if len(pending) != 1 {
		t.Errorf("pending = %d", len(pending))
	}

	if err := svc.Delete(ctx, r1.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(ctx, r1.ID); !errors.HasCode(err, errors.ErrCodeDBNotFound) {
		t.Errorf("approve deleted: %v", err)
	}
}

func TestReviewRejectsForeignBookingReference(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReviewService(db)
	tour := testutil.CreateTour(t, db, "doi-suthep", 1000)

	_, err := svc.Submit(context.Background(), tour.ID, dto.CreateReviewRequest{
		AuthorName: "Ann", Rating: 5, BookingReference: "BK000000XXXXXX",
	})
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Fatalf("err = %v", err)
	}
}

func TestSummaryWithoutReviews(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReviewService(db)
	if sum := svc.Summary(context.Background(), 1); sum.Count != 0 || sum.Average != 0 {
		t.Errorf("summary = %+v", sum)
	}
}
