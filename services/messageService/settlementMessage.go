package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"brosBetTracker/models"
	"brosBetTracker/services/common"
)

// BuildSettlementEmbed summarizes one settlement pass: who won, who lost,
// who pushed, and the group's net swing.
func BuildSettlementEmbed(settled []models.Wager) *discordgo.MessageEmbed {
	var winners, losers, pushes strings.Builder
	netSwing := decimal.Zero

	for _, w := range settled {
		line := fmt.Sprintf("%s - %s %s - **%s**\n",
			w.Bettor, wagerSummary(w), w.Settlement.FinalScoreText,
			common.FormatCurrency(w.Settlement.ProfitLoss))

		switch w.Settlement.Outcome {
		case models.OutcomeWin:
			winners.WriteString(line)
		case models.OutcomeLoss:
			losers.WriteString(line)
		case models.OutcomePush:
			pushes.WriteString(line)
		}
		netSwing = netSwing.Add(w.Settlement.ProfitLoss)
	}

	winnersText := winners.String()
	if winnersText == "" {
		winnersText = "_No winners_"
	}
	losersText := losers.String()
	if losersText == "" {
		losersText = "_No losers_"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Net Swing",
			Value:  fmt.Sprintf("**%s**", common.FormatCurrency(netSwing)),
			Inline: true,
		},
		{
			Name:  "Winners",
			Value: strings.TrimSpace(winnersText),
		},
		{
			Name:  "Losers",
			Value: strings.TrimSpace(losersText),
		},
	}
	if pushes.Len() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Pushes",
			Value: strings.TrimSpace(pushes.String()),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("🏁 %d Wagers Settled", len(settled)),
		Color:  0x57F287, // green-ish
		Fields: fields,
	}
}

// BuildLinesEmbed posts the morning's board of current lines.
func BuildLinesEmbed(sport string, lines []string) *discordgo.MessageEmbed {
	body := "_No lines available_"
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📢 Today's %s Lines", sport),
		Description: body,
		Color:       0x3498db,
	}
}

// AnnounceSettlements posts the settlement summary to the configured channel.
// A nil session (no bot configured) is a silent no-op.
func AnnounceSettlements(s *discordgo.Session, channelID string, settled []models.Wager) error {
	if s == nil || channelID == "" || len(settled) == 0 {
		return nil
	}

	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildSettlementEmbed(settled)},
	})
	return err
}

func wagerSummary(w models.Wager) string {
	if w.Kind == models.KindTotal {
		return fmt.Sprintf("%s %s,", w.Selection, w.Line.String())
	}
	return fmt.Sprintf("%s %s,", w.Selection, common.FormatLine(w.Line))
}
