package notify

import (
	"context"

	"delivery-backend/pkg/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// messageCreator is the slice of the Twilio REST client used here.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	api  messageCreator
	from string
	log  *zap.Logger
}

func NewTwilioSender(config utils.SMSConfig, log *zap.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})
	return newTwilioSender(client.Api, config.From, log)
}

func newTwilioSender(api messageCreator, from string, log *zap.Logger) *TwilioSender {
	return &TwilioSender{
		api:  api,
		from: from,
		log:  log.With(zap.String("notifier", "twilio")),
	}
}

// SendSMS blocks for the full API round trip; the Twilio client does not
// take a context, so ctx is only checked before the call.
func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		s.log.Error("Failed to send SMS", zap.Error(err), zap.String("to", to))
		return err
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.log.Info("SMS sent", zap.String("to", to), zap.String("sid", sid))
	return nil
}
