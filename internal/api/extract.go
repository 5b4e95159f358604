package api

import (
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

// ExtractText pulls the reply text out of a buffered response body.
// A well-formed body without a reply returns ok=false and no error.
func ExtractText(body []byte, shape models.Shape) (string, bool, error) {
	if !gjson.ValidBytes(body) {
		return "", false, apierrors.NewParseError("response is not valid JSON", string(body))
	}

	var result gjson.Result
	switch shape {
	case models.ShapeChat:
		result = gjson.GetBytes(body, PathChatText)
	case models.ShapeAnthropic:
		result = gjson.GetBytes(body, PathAnthropicText)
	default:
		msg := gjson.GetBytes(body, PathResponsesMessage)
		if !msg.Exists() {
			return "", false, nil
		}
		result = msg.Get(PathResponsesText)
	}

	if !result.Exists() || result.Type != gjson.String {
		return "", false, nil
	}
	return result.String(), true, nil
}

// ParseDelta decodes one stream frame. Frames that are not JSON or carry no
// string delta are skipped.
func ParseDelta(frame string) (string, bool) {
	if !gjson.Valid(frame) {
		return "", false
	}
	delta := gjson.Get(frame, PathDelta)
	if delta.Type != gjson.String {
		return "", false
	}
	return delta.String(), true
}

// errorMessage returns the provider's error message from a failure body,
// falling back to the trimmed body itself.
func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, PathErrorMessage); msg.Exists() {
			return msg.String()
		}
	}
	return strings.TrimSpace(string(body))
}
