// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tourbooking/models"
)

var dbSeq atomic.Int64

// NewDB opens a migrated in-memory sqlite database private to t
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateTour inserts a published tour priced at price
func CreateTour(t testing.TB, db *gorm.DB, slug string, price int64) *models.Tour {
	t.Helper()
	tour := &models.Tour{
		Slug:        slug,
		TitleEn:     strings.ReplaceAll(slug, "-", " "),
		LocationEn:  "Chiang Mai",
		Price:       decimal.NewFromInt(price),
		Currency:    "THB",
		Duration:    "1 day",
		IsPublished: true,
	}
	if err := db.Create(tour).Error; err != nil {
		t.Fatalf("create tour: %v", err)
	}
	return tour
}
