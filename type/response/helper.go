package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
)

// SendFailed reports a client error in the JSON error shape.
func SendFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error(msg))
}

// SendAppError reports err in the JSON error shape with the status of its kind.
func SendAppError(c *fiber.Ctx, err error) error {
	return c.Status(apperror.Status(err)).JSON(Error(err.Error()))
}

// SendTextError reports err as "Error: <message>" plain text, the shape the
// generation form expects.
func SendTextError(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(apperror.Status(err)).SendString("Error: " + err.Error())
}

func SendVerify(c *fiber.Ctx, res *VerifyResponse) error {
	return c.Status(fiber.StatusOK).JSON(res)
}

func SendChat(c *fiber.Ctx, reply string) error {
	return c.Status(fiber.StatusOK).JSON(&ChatResponse{Response: reply})
}

func SendChatFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(&ChatErrorResponse{Error: msg})
}
