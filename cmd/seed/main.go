package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/layout"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
	"github.com/lumie-registry/internal/service"
)

// 演示礼物，价格覆盖两种费率场景
var demoGifts = []struct {
	Name  string
	Price string
	Qty   int
}{
	{"Jantar Romântico", "180.00", 2},
	{"Jogo de Panelas", "350.00", 1},
	{"Cafeteira Expresso", "420.00", 1},
	{"Jogo de Taças", "95.00", 4},
	{"Kit Churrasco", "150.00", 2},
	{"Adega Climatizada", "780.00", 1},
	{"Noite no Hotel", "500.00", 2},
	{"Passeio de Barco", "260.00", 3},
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail("load config: %v", err)
	}
	logger.Init("debug", logger.Options{})

	db, err := models.InitDB(cfg.Database, true)
	if err != nil {
		fail("open database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		fail("migrate: %v", err)
	}

	users := repository.NewGormUserRepository(db)
	lists := repository.NewGormGiftListRepository(db)
	layouts := repository.NewGormPageLayoutRepository(db)
	gifts := repository.NewGormGiftItemRepository(db)

	if _, err := users.FindByEmail("demo@lumie.local"); err == nil {
		fmt.Println("demo data already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash password: %v", err)
	}
	user := &models.User{Email: "demo@lumie.local", PasswordHash: string(hash), Name: "Ana & João"}
	if err := users.Create(user); err != nil {
		fail("create user: %v", err)
	}

	eventDate := time.Now().AddDate(0, 3, 0)
	list := &models.GiftList{
		UserID:              user.ID,
		Slug:                "casamento-ana-joao",
		Title:               "Casamento Ana & João",
		Description:         "Venha celebrar com a gente!",
		EventDate:           &eventDate,
		EventLocation:       "São Paulo, SP",
		FeeMode:             constants.FeeModePassToGuest,
		AllowPublicMessages: true,
		Active:              true,
	}
	if err := lists.Create(list); err != nil {
		fail("create list: %v", err)
	}

	layoutService := service.NewLayoutService(layouts)
	if _, err := layoutService.SaveLayout(list.ID, layout.Default()); err != nil {
		fail("create starter layout: %v", err)
	}

	for i, demo := range demoGifts {
		gift := &models.GiftItem{
			GiftListID:        list.ID,
			Name:              demo.Name,
			Price:             models.MustMoney(demo.Price),
			TotalQuantity:     demo.Qty,
			AvailableQuantity: demo.Qty,
			Active:            true,
			SortOrder:         i + 1,
		}
		if err := gifts.Create(gift); err != nil {
			fail("create gift %q: %v", demo.Name, err)
		}
	}

	fmt.Printf("seeded demo list %q (login demo@lumie.local / demo12345)\n", list.Slug)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "seed: "+format+"\n", args...)
	os.Exit(1)
}
