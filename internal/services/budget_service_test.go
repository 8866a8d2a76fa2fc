package services

import (
	"testing"

	"money/internal/models"
	"money/internal/testutil"
)

func TestGetBudget(t *testing.T) {
	t.Run("returns_nil_when_unset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.GetBudget()
		testutil.AssertNoError(t, err)
		if budget != nil {
			t.Errorf("expected nil budget, got total %v", budget.Total)
		}

		// Reading must not create the row
		var count int64
		if err := db.Model(&models.Budget{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count budgets: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 budget rows after read, got %d", count)
		}
	})

	t.Run("returns_stored_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.SetTestBudget(t, db, 450.5)

		budget, err := svc.GetBudget()
		testutil.AssertNoError(t, err)
		if budget == nil {
			t.Fatal("expected a budget, got nil")
		}
		if budget.Total != 450.5 {
			t.Errorf("expected total 450.5, got %v", budget.Total)
		}
	})
}

func TestSetBudget(t *testing.T) {
	t.Run("creates_on_first_write", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.SetBudget(300)
		testutil.AssertNoError(t, err)
		if budget.Total != 300 {
			t.Errorf("expected total 300, got %v", budget.Total)
		}
		if budget.Slug != models.BudgetSlug {
			t.Errorf("expected slug %q, got %q", models.BudgetSlug, budget.Slug)
		}
	})

	t.Run("updates_in_place", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		if _, err := svc.SetBudget(100); err != nil {
			t.Fatalf("first write failed: %v", err)
		}
		if _, err := svc.SetBudget(250); err != nil {
			t.Fatalf("second write failed: %v", err)
		}

		budget, err := svc.GetBudget()
		testutil.AssertNoError(t, err)
		if budget.Total != 250 {
			t.Errorf("expected total 250, got %v", budget.Total)
		}
	})

	t.Run("at_most_one_row_across_writes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		for _, total := range []float64{10, 20, 30, 40} {
			if _, err := svc.SetBudget(total); err != nil {
				t.Fatalf("write %v failed: %v", total, err)
			}
		}

		var count int64
		if err := db.Model(&models.Budget{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count budgets: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly 1 budget row, got %d", count)
		}
	})

	t.Run("round_trip_preserves_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		if _, err := svc.SetBudget(123.45); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		budget, err := svc.GetBudget()
		testutil.AssertNoError(t, err)
		if budget.Total != 123.45 {
			t.Errorf("expected total 123.45 back, got %v", budget.Total)
		}
	})

	t.Run("accepts_negative_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.SetBudget(-50)
		testutil.AssertNoError(t, err)
		if budget.Total != -50 {
			t.Errorf("expected total -50, got %v", budget.Total)
		}
	})
}
