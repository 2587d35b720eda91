package static_controller

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// StaticController serves the embedded frontend files
type StaticController struct {
	assets fs.FS
}

func NewStaticController(assets fs.FS) *StaticController {
	return &StaticController{assets: assets}
}

// File returns a handler that always answers with the named asset.
func (ctrl *StaticController) File(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := fs.ReadFile(ctrl.assets, name)
		if err != nil {
			slog.Error("Static asset missing", "file", name, "error", err)
			return fiber.ErrNotFound
		}

		c.Type(filepath.Ext(name), "utf-8")
		return c.Send(data)
	}
}
