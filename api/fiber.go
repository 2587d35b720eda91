package api

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sunthewhat/quick-cert-api/api/handler"
	"github.com/sunthewhat/quick-cert-api/api/middleware"
	"github.com/sunthewhat/quick-cert-api/api/routes"
	"github.com/sunthewhat/quick-cert-api/type/shared"
)

// Generation forms carry two images on top of the text fields.
const bodyLimit = 16 * 1024 * 1024

// NewApp builds the fiber application with every route mounted.
func NewApp(config *shared.Config, ctrls routes.Controllers) *fiber.App {
	cfg := fiber.Config{
		AppName:       "quick-cert api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     bodyLimit,
		JSONEncoder:   json.Marshal,
		JSONDecoder:   json.Unmarshal,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors(config.Cors))
	app.Use(compress.New())
	app.Use(etag.New())

	routes.Init(app, ctrls)

	app.Use(handler.HandleNotFound)

	return app
}
