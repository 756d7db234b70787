package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	app "todo-assistant/internal/application"
	"todo-assistant/internal/domain/entity"
)

// deleteCallbackPrefix префикс callback-данных inline-кнопок удаления.
const deleteCallbackPrefix = "del:"

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	pipeline *app.Pipeline
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewBot создаёт нового бота
func NewBot(token string, pipeline *app.Pipeline, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	l := log.With().Str("component", "telegram").Logger()
	l.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api:      api,
		pipeline: pipeline,
		log:      l,
	}, nil
}

// Run запускает основной цикл обработки сообщений. Каждое обновление
// обрабатывается в отдельной горутине; по отмене контекста приём новых
// сообщений останавливается, начатые обработки дорабатывают до конца.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		update := update
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.handleUpdate(ctx, update)
		}()
	}

	b.wg.Wait()
	return nil
}

// handleUpdate обрабатывает одно обновление. Ни одна ошибка или паника
// не выходит за пределы обработки этого сообщения.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает входящее текстовое или голосовое сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	var (
		reply *app.Reply
		err   error
	)
	switch {
	case msg.Voice != nil:
		audio, derr := b.downloadFile(msg.Voice.FileID)
		if derr != nil {
			b.log.Error().Err(derr).Int64("chat", chatID).Msg("voice download failed")
			return
		}
		reply, err = b.pipeline.HandleVoice(ctx, chatID, chatID, audio, msg.Voice.FileID)
	case msg.Text != "":
		reply, err = b.pipeline.HandleText(ctx, chatID, chatID, msg.Text)
	default:
		return
	}

	if err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("pipeline failed")
	}
	b.sendReply(chatID, reply)
}

// handleCallback обрабатывает выбор задачи из inline-клавиатуры.
// Идентификатор задачи приходит в callback-данных и минует разбор текста.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || !strings.HasPrefix(cq.Data, deleteCallbackPrefix) {
		return
	}
	taskID, err := strconv.ParseInt(strings.TrimPrefix(cq.Data, deleteCallbackPrefix), 10, 64)
	if err != nil {
		return
	}

	// убираем «часики» на кнопке независимо от исхода команды
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.Warn().Err(err).Msg("answer callback failed")
	}

	chatID := cq.Message.Chat.ID
	reply, err := b.pipeline.HandleDeleteSelection(ctx, chatID, chatID, taskID)
	if err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("delete selection failed")
	}
	b.sendReply(chatID, reply)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendReply отправляет текст, inline-клавиатуру выбора и голосовой ответ
func (b *Bot) sendReply(chatID int64, reply *app.Reply) {
	if reply == nil || reply.Text == "" {
		return
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Selectable) > 0 {
		msg.ReplyMarkup = deleteKeyboard(reply.Selectable)
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("send message failed")
		return
	}

	if reply.VoicePath != "" {
		voice := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(reply.VoicePath))
		if _, err := b.api.Send(voice); err != nil {
			// голосовой ответ best-effort, текст уже доставлен
			b.log.Warn().Err(err).Int64("chat", chatID).Msg("send voice failed")
		}
		os.Remove(reply.VoicePath)
	}
}

// deleteKeyboard строит inline-клавиатуру с кнопкой на каждую задачу
func deleteKeyboard(tasks []entity.Task) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks))
	for _, t := range tasks {
		data := fmt.Sprintf("%s%d", deleteCallbackPrefix, t.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Title, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
