package bot

import (
	"context"
	"testing"

	mock_bot "github.com/Minesh6684/OpenAI-Translator/internal/bot/mock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPlayer_Play(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{}
	p := NewChatPlayer(mb)

	require.NoError(t, p.Play(context.Background(), testUserID, []byte("mp3")))

	require.Len(t, mb.SentMessages, 1)
	msg, ok := mb.SentMessages[0].(tgbotapi.AudioConfig)
	require.True(t, ok)
	assert.Equal(t, testUserID, msg.ChatID)
	file, ok := msg.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, []byte("mp3"), file.Bytes)
	assert.Equal(t, audioFileName, file.Name)
}

func TestChatPlayer_SendError(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{SendErr: assert.AnError}
	p := NewChatPlayer(mb)

	assert.ErrorIs(t, p.Play(context.Background(), testUserID, []byte("mp3")), assert.AnError)
}

func TestChatClipboard_Copy(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{}
	c := NewChatClipboard(mb)

	require.NoError(t, c.Copy(context.Background(), testUserID, "a < b"))

	msg := sentMessage(t, mb, 0)
	assert.Equal(t, testUserID, msg.ChatID)
	assert.Equal(t, "<code>a &lt; b</code>", msg.Text)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
}

func TestChatClipboard_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mb := &mock_bot.MockBot{}
	c := NewChatClipboard(mb)

	assert.Error(t, c.Copy(ctx, testUserID, "text"))
	assert.Empty(t, mb.SentMessages)
}
