package routes

import (
	"github.com/gofiber/fiber/v2"
	static_controller "github.com/sunthewhat/quick-cert-api/api/controllers/static"
	"github.com/sunthewhat/quick-cert-api/web"
)

func SetupStaticRoutes(router fiber.Router, ctrl *static_controller.StaticController) {
	router.Get("/", ctrl.File(web.IndexFile))
	router.Get("newverify.html", ctrl.File("newverify.html"))
	router.Get("newstyle.css", ctrl.File("newstyle.css"))
	router.Get("newscript.js", ctrl.File("newscript.js"))
}
