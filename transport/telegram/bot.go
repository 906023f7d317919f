package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/usecase"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	commandPrices  = "/preise"
	commandStation = "/bahnhof"

	helpText = "Befehle:\n" +
		"/bahnhof <Suchbegriff>\n" +
		"/preise <Start> | <Ziel> | <JJJJ-MM-TT> [| <Tage>]"
)

var ErrInvalidInput = errors.New("Ungültige Eingabe. Format: /preise <Start> | <Ziel> | <JJJJ-MM-TT> [| <Tage>]")

type Bot struct {
	client    *bot.Bot
	searchUC  *usecase.SearchUsecase
	stationUC *usecase.StationUsecase
	logger    *slog.Logger
}

func NewBot(token string, searchUC *usecase.SearchUsecase, stationUC *usecase.StationUsecase, logger *slog.Logger) (*Bot, error) {
	b := &Bot{
		searchUC:  searchUC,
		stationUC: stationUC,
		logger:    logger,
	}
	client, err := bot.New(token, bot.WithDefaultHandler(b.DefaultHandler))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	b.client = client
	b.RegisterHandlers()
	return b, nil
}

// Start blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	b.client.Start(ctx)
}

func (b *Bot) RegisterHandlers() {
	b.client.RegisterHandler(bot.HandlerTypeMessageText, commandPrices, bot.MatchTypePrefix, b.PricesHandler)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, commandStation, bot.MatchTypePrefix, b.StationHandler)
}

func (b *Bot) DefaultHandler(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.reply(ctx, botClient, update, helpText)
}

func (b *Bot) StationHandler(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	query := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, commandStation))
	b.logger.Info("telegram station search", "chat_id", update.Message.Chat.ID, "query", query)

	station, err := b.stationUC.Search(ctx, query)
	b.reply(ctx, botClient, update, FormatStation(station, err, b.stationUC.Suggest(query)))
}

// FormatStation renders a /bahnhof answer. Suggestions that repeat the
// resolved station are left out.
func FormatStation(station *domain.StationRef, err error, suggestions []domain.StationRef) string {
	var sb strings.Builder
	if err != nil {
		fmt.Fprintf(&sb, "Fehler: %s", err.Error())
	} else {
		fmt.Fprintf(&sb, "%s\n%s", station.Name, station.ID)
	}

	header := false
	for _, s := range suggestions {
		if station != nil && s.ID == station.ID {
			continue
		}
		if !header {
			sb.WriteString("\n\nMeintest du:")
			header = true
		}
		fmt.Fprintf(&sb, "\n- %s", s.Name)
	}
	return sb.String()
}

func (b *Bot) PricesHandler(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	req, err := ParsePricesCommand(update.Message.Text)
	if err != nil {
		b.reply(ctx, botClient, update, err.Error())
		return
	}
	b.logger.Info("telegram price search", "chat_id", update.Message.Chat.ID, "start", req.Start, "ziel", req.Destination)

	result, err := b.searchUC.SearchPrices(ctx, req)
	var notFound *domain.StationNotFoundError
	if errors.As(err, &notFound) {
		b.reply(ctx, botClient, update, FormatStation(nil, err, b.stationUC.Suggest(notFound.Query)))
		return
	}
	if err != nil {
		b.reply(ctx, botClient, update, fmt.Sprintf("Fehler: %s", err.Error()))
		return
	}
	b.reply(ctx, botClient, update, FormatResult(result))
}

func (b *Bot) reply(ctx context.Context, botClient *bot.Bot, update *models.Update, text string) {
	_, err := botClient.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		b.logger.Error("telegram send failed", "chat_id", update.Message.Chat.ID, "error", err)
	}
}

// ParsePricesCommand reads "/preise Berlin | München | 2025-05-01 | 5".
func ParsePricesCommand(text string) (*domain.SearchRequest, error) {
	args := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), commandPrices))
	parts := strings.Split(args, "|")
	if len(parts) < 3 || len(parts) > 4 {
		return nil, ErrInvalidInput
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	req := &domain.SearchRequest{
		Start:       parts[0],
		Destination: parts[1],
		StartDate:   parts[2],
	}
	if req.Start == "" || req.Destination == "" || req.StartDate == "" {
		return nil, ErrInvalidInput
	}
	if len(parts) == 4 {
		days, err := strconv.Atoi(parts[3])
		if err != nil || days <= 0 {
			return nil, ErrInvalidInput
		}
		req.DayLimit = days
	}
	return req, nil
}

// FormatResult renders one line per date followed by the resolved stations.
func FormatResult(result *domain.AggregateResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s\n", result.Meta.StartStation.Name, result.Meta.DestinationStation.Name)
	for _, day := range result.Days {
		if day.Result.Price > 0 {
			fmt.Fprintf(&sb, "%s: %.2f € (%s)\n", day.Date, day.Result.Price, day.Result.Info)
		} else {
			fmt.Fprintf(&sb, "%s: %s\n", day.Date, day.Result.Info)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
