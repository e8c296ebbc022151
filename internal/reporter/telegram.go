// Package reporter pushes refresh summaries to Telegram. Strictly a side
// channel: every send is dispatched fire-and-forget by callers and a
// failure never touches query results.
package reporter

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"concurso-hunter/internal/config"
	"concurso-hunter/internal/listing"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramReporter returns nil (not an error) when no token is
// configured — the reporter is optional and all methods are nil-safe.
func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	_, err := t.bot.Send(msg)
	return err
}

// SendRefreshSummary reports a completed refresh with the top listings.
func (t *TelegramReporter) SendRefreshSummary(total int, top []listing.DisplayRecord) error {
	if t == nil {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 <b>Concursos atualizados</b>: %d abertos\n\n", total)
	for _, rec := range top {
		fmt.Fprintf(&sb, "💰 %s | %s | até %s\n🔗 %s\n\n",
			rec.Salary, rec.Region, rec.Deadline, rec.Link)
	}
	return t.SendMessage(sb.String())
}

func (t *TelegramReporter) SendError(errReq error) error {
	if t == nil {
		return nil
	}
	return t.SendMessage(fmt.Sprintf("⚠️ <b>Erro no radar de concursos</b>:\n%v", errReq))
}
