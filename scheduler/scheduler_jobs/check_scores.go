package scheduler_jobs

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"brosBetTracker/models"
	"brosBetTracker/services/common"
	"brosBetTracker/services/extService"
	"brosBetTracker/services/messageService"
	"brosBetTracker/services/settleService"
	"brosBetTracker/services/wagerService"
)

const scoreLookbackDays = 3

// CheckCompletedGames fetches fresh scores for every sport that still has
// pending wagers and runs one settlement pass over the batch.
func CheckCompletedGames(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckCompletedGames", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckCompletedGames: %v", r)
		}
	}()

	var sports []string
	result := db.Model(&models.Wager{}).
		Where("settled = ?", false).
		Distinct().
		Pluck("sport", &sports)
	if result.Error != nil {
		return result.Error
	}
	if len(sports) == 0 {
		return nil
	}

	var records []settleService.ScoreRecord
	for _, sport := range sports {
		events, err := extService.GetScores(sport, scoreLookbackDays)
		if err != nil {
			common.SendError(db, "checkScores", err)
			continue
		}
		records = append(records, extService.ScoreRecords(events)...)
	}
	if len(records) == 0 {
		return nil
	}

	settled, err := wagerService.AutoSettleAll(db, records)
	if err != nil {
		return err
	}
	if len(settled) == 0 {
		return nil
	}

	log.Printf("Settled %d wagers", len(settled))

	announceErr := messageService.AnnounceSettlements(s, os.Getenv("ANNOUNCE_CHANNEL_ID"), settled)
	if announceErr != nil {
		common.SendError(db, "checkScores", announceErr)
	}
	return nil
}
