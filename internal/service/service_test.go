package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db failed: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	users    *repository.GormUserRepository
	lists    *repository.GormGiftListRepository
	layouts  *repository.GormPageLayoutRepository
	gifts    *repository.GormGiftItemRepository
	orders   *repository.GormOrderRepository
	messages *repository.GormMessageRepository

	list *models.GiftList
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{
		db:       db,
		users:    repository.NewGormUserRepository(db),
		lists:    repository.NewGormGiftListRepository(db),
		layouts:  repository.NewGormPageLayoutRepository(db),
		gifts:    repository.NewGormGiftItemRepository(db),
		orders:   repository.NewGormOrderRepository(db),
		messages: repository.NewGormMessageRepository(db),
	}

	user := &models.User{Email: "ana@example.com", PasswordHash: "x", Name: "Ana"}
	if err := f.users.Create(user); err != nil {
		t.Fatalf("create test user failed: %v", err)
	}
	f.list = &models.GiftList{
		UserID:              user.ID,
		Slug:                "casamento-ana",
		Title:               "Casamento Ana & João",
		FeeMode:             constants.FeeModePassToGuest,
		AllowPublicMessages: true,
		Active:              true,
	}
	if err := f.lists.Create(f.list); err != nil {
		t.Fatalf("create test list failed: %v", err)
	}
	return f
}

func (f *fixture) createGift(t *testing.T, name string, price string, total int) *models.GiftItem {
	t.Helper()
	gift := &models.GiftItem{
		GiftListID:        f.list.ID,
		Name:              name,
		Price:             models.MustMoney(price),
		TotalQuantity:     total,
		AvailableQuantity: total,
		Active:            true,
	}
	if err := f.gifts.Create(gift); err != nil {
		t.Fatalf("create test gift failed: %v", err)
	}
	return gift
}
