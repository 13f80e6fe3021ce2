package scheduler_jobs

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"brosBetTracker/services/common"
	"brosBetTracker/services/extService"
	"brosBetTracker/services/messageService"
)

var linesSports = []string{"NFL", "NCAAF"}

// CheckDailyLines posts the morning board of current spreads and totals.
func CheckDailyLines(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckDailyLines", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckDailyLines: %v", r)
		}
	}()

	if s == nil {
		return nil
	}
	channelID := os.Getenv("ANNOUNCE_CHANNEL_ID")
	if channelID == "" {
		return nil
	}

	for _, sport := range linesSports {
		events, err := extService.GetOdds(sport)
		if err != nil {
			common.SendError(db, "checkLines", err)
			continue
		}

		var lines []string
		for _, ev := range events {
			line, err := extService.FormatEventLine(ev)
			if err != nil {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}

		_, err = s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{messageService.BuildLinesEmbed(sport, lines)},
		})
		if err != nil {
			common.SendError(db, "checkLines", err)
		}
	}

	return nil
}
