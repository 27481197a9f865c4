package share

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"sakha-landing/pkg/phone"
	"sakha-landing/pkg/utils"
)

const whatsAppBase = "https://wa.me/"

// ShareMessage precedes the page URL in the WhatsApp share text.
const ShareMessage = "Hi! I found this amazing service called Sakha - a digital companion for Indian seniors. " +
	"It provides daily wellness check-ins, medicine reminders, and social companionship. " +
	"Check it out: "

// WhatsAppURL returns a wa.me link prefilled with the share message for pageURL.
func WhatsAppURL(pageURL string) string {
	q := url.Values{}
	q.Set("text", ShareMessage+pageURL)
	return whatsAppBase + "?" + q.Encode()
}

// CallLogger records clicks on tel: links.
type CallLogger struct {
	logger *zap.Logger
}

// NewCallLogger creates a CallLogger. A nil logger discards entries.
func NewCallLogger(logger *zap.Logger) *CallLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallLogger{logger: logger}
}

// HandleClick logs a tel: link activation. Non-tel hrefs are ignored and
// reported false. Indian numbers also carry a hash of their E.164 form.
func (c *CallLogger) HandleClick(href string) bool {
	number, ok := strings.CutPrefix(href, "tel:")
	if !ok {
		return false
	}
	fields := []zap.Field{zap.String("number", utils.MaskPhone(number))}
	if e164, err := phone.E164(number); err == nil {
		fields = append(fields, zap.String("phone_hash", utils.HashString(e164)))
	}
	c.logger.Info("call initiated", fields...)
	return true
}
