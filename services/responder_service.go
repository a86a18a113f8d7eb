package services

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/store"
	"github.com/google/uuid"
)

// ClearCommand clears the chat log and input field instead of being
// answered
const ClearCommand = "/clean"

// DefaultReply is used when no keyword matches the user's message
const DefaultReply = "Thanks for your message! How can I assist you with your laundry needs today?"

// KeywordReply is one entry of the responder table. Entries are matched
// in slice order, so earlier keywords shadow later ones.
type KeywordReply struct {
	Keyword string
	Reply   string
}

// DefaultKeywordReplies is the built-in support script
var DefaultKeywordReplies = []KeywordReply{
	{"hello", "Hi there! How can I help you with your laundry today?"},
	{"hi", "Hello! Welcome to Laundry Dash. What service can I help you with?"},
	{"price", "Our basic wash & fold service starts at $2.50/lb. Would you like to see our full price list?"},
	{"pickup", "We offer free pickup and delivery! When would you like us to pick up your laundry?"},
	{"delivery", "We deliver 7 days a week between 8 AM and 8 PM. Delivery is always free!"},
	{"time", "We typically complete orders within 24 hours. Would you like to schedule a pickup?"},
}

// Responder produces a reply for an incoming user message. Strategies
// are swappable behind this interface; the keyword table is the only
// one shipped.
type Responder interface {
	Respond(history []models.Message, msg models.Message) string
}

// KeywordResponder matches the message text case-insensitively against
// an ordered keyword table, first match wins, with a fixed fallback
type KeywordResponder struct {
	replies  []KeywordReply
	fallback string
}

// NewKeywordResponder creates a responder over the given table
func NewKeywordResponder(replies []KeywordReply, fallback string) *KeywordResponder {
	return &KeywordResponder{replies: replies, fallback: fallback}
}

// Respond implements Responder
func (r *KeywordResponder) Respond(_ []models.Message, msg models.Message) string {
	text := strings.ToLower(msg.Text)
	for _, entry := range r.replies {
		if strings.Contains(text, entry.Keyword) {
			return entry.Reply
		}
	}
	return r.fallback
}

// ChatService wires the responder to the chat store: each qualifying
// user message gets exactly one delayed reply from the "other" side.
type ChatService struct {
	chat      *store.ChatStore
	responder Responder
	delay     func() time.Duration
	sleep     func(time.Duration)
}

// NewChatService creates a chat service with the default 1-2 s reply
// latency
func NewChatService(chat *store.ChatStore, responder Responder) *ChatService {
	return &ChatService{
		chat:      chat,
		responder: responder,
		delay:     replyDelay,
		sleep:     time.Sleep,
	}
}

// SetReplyDelay overrides the reply latency (primarily for testing)
func (s *ChatService) SetReplyDelay(delay func() time.Duration) {
	s.delay = delay
}

// replyDelay simulates response latency, uniform in [1s, 2s)
func replyDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(time.Second)))
}

// HandleMessage appends the message to the log and reacts to it.
// Messages not sent by the user never get a reply; the responder must
// not answer its own output. The clear command wipes the log and the
// pending input instead of being answered.
func (s *ChatService) HandleMessage(msg models.Message) {
	s.chat.AddMessage(msg)

	if msg.Sender != models.SenderUser {
		return
	}

	if strings.TrimSpace(msg.Text) == ClearCommand {
		s.chat.ClearMessages()
		s.chat.ClearInputText()
		return
	}

	history := s.chat.Messages()
	reply := s.responder.Respond(history, msg)

	go func() {
		s.sleep(s.delay())
		s.chat.AddMessage(models.Message{
			ID:        uuid.New().String(),
			Text:      reply,
			Sender:    models.SenderOther,
			Timestamp: time.Now().UnixMilli(),
			Type:      models.MessageText,
		})
		log.Printf("Chat responder replied to message %s", msg.ID)
	}()
}
