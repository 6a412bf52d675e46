package chatbot

import (
	"strings"
)

// Service resolves chat messages to canned replies by keyword matching.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Respond classifies the message into one of the fixed intents. Matching is
// substring containment over the lower-cased text, first bucket wins. The
// function is pure: identical input always yields identical output.
func (s *Service) Respond(msg Message) Reply {
	text := strings.ToLower(msg.Message)
	for _, b := range buckets {
		for _, k := range b.keywords {
			if strings.Contains(text, k) {
				return b.toReply()
			}
		}
	}
	return generalBucket.toReply()
}

func (b bucket) toReply() Reply {
	suggestions := make([]string, len(b.suggestions))
	copy(suggestions, b.suggestions)
	return Reply{Reply: b.reply, Intent: b.intent, Suggestions: suggestions}
}
