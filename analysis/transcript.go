package analysis

// RawMessage is one message entry from the support-desk chat export.
type RawMessage struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	IsInternal bool              `json:"is_internal"`
	SenderID   *string           `json:"sender_id"`
	Content    RawMessageContent `json:"content"`
	CreatedAt  string            `json:"created_at"`
}

// RawMessageContent holds the text body of an export message.
type RawMessageContent struct {
	Text string `json:"text"`
}

// RawConversation is one element of the export's root array.
type RawConversation struct {
	ConversationID string       `json:"conversation_id"`
	Messages       []RawMessage `json:"messages"`
}

// Sender labels on canonical messages.
const (
	SenderBot  = "Bot"
	SenderUser = "User"
)

// botSenderID is the one known bot identity in the export.
const botSenderID = "bf17272dc3f0"

// Message is a cleaned, normalized message.
type Message struct {
	MessageID string `json:"message_id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ConversationMetadata summarizes a canonical conversation.
type ConversationMetadata struct {
	ConversationID string `json:"conversation_id"`
	StartTimeUTC   string `json:"start_time_utc"`
	TotalMessages  int    `json:"total_messages"`
}

// Conversation is the canonical transcript document: the unit of work for
// classification.
type Conversation struct {
	Metadata           ConversationMetadata `json:"metadata"`
	TranscriptFullText string               `json:"transcript_full_text"`
	Messages           []Message            `json:"transcript_list_of_messages"`
}
