// Package flashmessages stores one-shot messages on the session so a
// redirect can carry feedback (and the payment status banner) to the next
// page render.
package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"registry.link/utils"
)

const (
	FlashErrorKey   = "flash_error"
	FlashSuccessKey = "flash_success"
	FlashNoticeKey  = "flash_notice"
	flashFormKey    = "flash_form_data"
)

// FlashData is what a page render receives.
type FlashData struct {
	Error   string
	Success string
	Notice  string
}

// SetFlashMessage stores a one-shot message under the given key.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages reads and clears all flash messages.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return FlashData{}, err
	}
	data := FlashData{}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashNoticeKey).(string); ok {
		data.Notice = v
		sess.Delete(FlashNoticeKey)
	}
	return data, sess.Save()
}

// SetFlashFormData stores a submitted form struct so a redirect back to the
// form can repopulate it.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormKey, string(payload))
	return sess.Save()
}

// GetFlashFormData reads and clears stored form data into dst. A missing
// entry leaves dst untouched and returns false.
func GetFlashFormData(c *fiber.Ctx, dst interface{}) bool {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return false
	}
	payload, ok := sess.Get(flashFormKey).(string)
	if !ok || payload == "" {
		return false
	}
	sess.Delete(flashFormKey)
	_ = sess.Save()
	return json.Unmarshal([]byte(payload), dst) == nil
}
