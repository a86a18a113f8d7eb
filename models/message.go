package models

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser  Sender = "user"
	SenderOther Sender = "other"
)

// MessageType distinguishes plain text from embedded widget messages
type MessageType string

const (
	MessageText MessageType = "text"
	// MessageGyro marks a message rendered as the live sensor display
	MessageGyro MessageType = "gyro"
)

// Message is one entry in the append-only chatroom log. Text may contain
// Markdown; Timestamp is epoch milliseconds to match the client.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Timestamp int64       `json:"timestamp"`
	Type      MessageType `json:"type,omitempty"`
}
