package apierrors

import (
	"fmt"

	"todolist/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message. templateData
// fills the placeholders of the message, if any.
func CreateError(code int, msgKey string, lang string, templateData ...map[string]any) JsonErr {
	message := GetTransErrorMsg(msgKey, lang, templateData...)
	return JsonErr{ErrDetails: Err{code, message}}
}

// GetTransErrorMsg retrieves the translated error message, falling back to
// English and then to the key itself.
func GetTransErrorMsg(msgKey string, lang string, templateData ...map[string]any) string {
	if translator.Translator == nil {
		return msgKey
	}

	cfg := &i18n.LocalizeConfig{MessageID: msgKey}
	if len(templateData) > 0 {
		cfg.TemplateData = templateData[0]
	}

	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	// A message missing in lang but present in English comes back with a
	// MessageNotFoundErr alongside the English text.
	msg, err := l.Localize(cfg)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
	}
	if msg == "" {
		return msgKey
	}
	return msg
}
