// Package renderer wraps Fiber view rendering with the conventions every
// handler shares: explicit layouts, status codes and flash message keys.
package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"registry.link/pkg/flashmessages"
)

const (
	FlashErrorKeyView   = "Error"
	FlashSuccessKeyView = "Success"
	FlashNoticeKeyView  = "Notice"
)

// SetFlashMessages copies flash data into render data under the view keys.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Notice != "" {
		data[FlashNoticeKeyView] = flash.Notice
	}
}

// Render renders a named view within a layout. The optional status defaults
// to 200.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
