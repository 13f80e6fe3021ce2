package main

import (
	"log"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brosBetTracker/models"
	"brosBetTracker/scheduler"
	"brosBetTracker/services/importService"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.Bettor{}, &models.Wager{}, &models.ErrorLog{}, &models.Migration{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	if csvPath := os.Getenv("IMPORT_CSV_PATH"); csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			log.Fatalf("Error opening import CSV: %v", err)
		}
		err = importService.RunHistoricalImport(db, f)
		f.Close()
		if err != nil {
			log.Fatalf("Error importing historical wagers: %v", err)
		}
	}

	// The announcement bot is optional; without a token the tracker still
	// settles wagers on schedule, just silently.
	var dg *discordgo.Session
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token != "" {
		var err error
		dg, err = discordgo.New("Bot " + token)
		if err != nil {
			log.Fatalf("Error creating Discord session: %v", err)
		}

		err = dg.Open()
		if err != nil {
			log.Fatalf("Error opening Discord session: %v", err)
		}
		defer func(dg *discordgo.Session) {
			err := dg.Close()
			if err != nil {
				log.Printf("Error closing Discord session: %v", err)
			}
		}(dg)
	}

	scheduler.SetupCron(dg, db)

	log.Println("Bet tracker is running. Press CTRL+C to exit.")
	select {}
}
