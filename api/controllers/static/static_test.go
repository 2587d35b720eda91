package static_controller_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	static_controller "github.com/sunthewhat/quick-cert-api/api/controllers/static"
	"github.com/sunthewhat/quick-cert-api/web"
)

func TestStaticController_File(t *testing.T) {
	ctrl := static_controller.NewStaticController(web.Assets)
	app := fiber.New()
	app.Get("/", ctrl.File(web.IndexFile))
	app.Get("/newverify.html", ctrl.File("newverify.html"))
	app.Get("/newstyle.css", ctrl.File("newstyle.css"))
	app.Get("/newscript.js", ctrl.File("newscript.js"))

	tests := []struct {
		path            string
		wantContentType string
		wantContains    string
	}{
		{"/", "text/html", `id="generateForm"`},
		{"/newverify.html", "text/html", `id="verifyForm"`},
		{"/newstyle.css", "text/css", ".chat-box"},
		{"/newscript.js", "javascript", "/verify-certificate"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.wantContentType)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.wantContains)
		})
	}
}

func TestStaticController_MissingAsset(t *testing.T) {
	ctrl := static_controller.NewStaticController(fstest.MapFS{
		"present.css": &fstest.MapFile{Data: []byte("body{}")},
	})
	app := fiber.New()
	app.Get("/present.css", ctrl.File("present.css"))
	app.Get("/gone.html", ctrl.File("gone.html"))

	resp, err := app.Test(httptest.NewRequest("GET", "/gone.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/present.css", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	assert.Equal(t, "body{}", string(body))
}
