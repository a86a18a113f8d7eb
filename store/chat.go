package store

import (
	"sync"
	"time"

	"github.com/boska/laundry-dash-api/models"
)

// IntroMessage is the Markdown greeting the chatroom opens with
const IntroMessage = `
Hello, I'm Yang Lee! 👋

![Profile](https://avatars.githubusercontent.com/boska)

Welcome to my app! You can download the native version on:

- **AppStore**: [Coming soon](https://apps.apple.com) 🍎
- **Google Play**: [Coming soon](https://play.google.com) 🤖

**Privacy Policy**: No data abuse, I promise! 🔒

Here are some key features:

- **Feed** - A GitHub repo reader 📱
- **Localization** supported 🌍
- **Dark/Light Theme** 🌓
- **Order** - Experimental checkout view 🛒

This app is open-source! Check it out here:
[github.com/boska](https://github.com/boska)

*Feel free to explore and ask questions!* ✨
`

// ChatStore holds the append-only chatroom log and the pending input
// field. Messages are never edited or removed individually; the only
// destructive operation is a full clear.
type ChatStore struct {
	mu        sync.Mutex
	messages  []models.Message
	inputText string
}

// NewChatStore creates a chat log seeded with the intro message
func NewChatStore() *ChatStore {
	return &ChatStore{
		messages: []models.Message{
			{
				ID:        "intro-1",
				Text:      IntroMessage,
				Sender:    models.SenderOther,
				Timestamp: time.Now().UnixMilli(),
				Type:      models.MessageText,
			},
		},
	}
}

// AddMessage appends a message to the log
func (c *ChatStore) AddMessage(msg models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// SetMessages replaces the log wholesale
func (c *ChatStore) SetMessages(msgs []models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = make([]models.Message, len(msgs))
	copy(c.messages, msgs)
}

// ClearMessages empties the log
func (c *ChatStore) ClearMessages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// Messages returns a copy of the log in append order
func (c *ChatStore) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// SetInputText sets the pending input field
func (c *ChatStore) SetInputText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputText = text
}

// ClearInputText empties the pending input field
func (c *ChatStore) ClearInputText() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputText = ""
}

// InputText returns the pending input field
func (c *ChatStore) InputText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputText
}
