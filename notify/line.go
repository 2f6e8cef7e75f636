package notify

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/rs/zerolog"
)

// LineNotifier pushes text messages to LINE users through the Messaging
// API. Recipients are addressed by their LINE user ID.
type LineNotifier struct {
	api *messaging_api.MessagingApiAPI
	log zerolog.Logger
}

// NewLineNotifier initializes a notifier with the channel access token.
func NewLineNotifier(channelToken string, logger zerolog.Logger) (*LineNotifier, error) {
	if channelToken == "" {
		return nil, fmt.Errorf("line channel access token is required")
	}
	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("init line client: %w", err)
	}
	return &LineNotifier{api: api, log: logger}, nil
}

// Push sends one text message to the given LINE user. The message is
// attempted exactly once; the caller converts a failure into a
// notification status rather than surfacing it.
func (n *LineNotifier) Push(ctx context.Context, userID, text string) error {
	_, err := n.api.PushMessage(&messaging_api.PushMessageRequest{
		To: userID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("push message to %s: %w", userID, err)
	}
	n.log.Debug().Str("to", userID).Msg("line notification sent")
	return nil
}
