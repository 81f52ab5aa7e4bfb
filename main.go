package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"registry.link/configs"
	"registry.link/configs/configslog"
	"registry.link/routes"
)

func main() {
	_ = godotenv.Load()
	if err := configslog.Init(configs.GetEnv("APP_ENV", "development")); err != nil {
		panic(err)
	}
	defer configslog.Sync()

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatalf("Database connection failed: %v", err)
	}

	engine := html.New(configs.GetEnv("VIEWS_DIR", "./views"), ".html")
	app := fiber.New(fiber.Config{
		AppName: "registry.link",
		Views:   engine,
	})

	routes.SetupRoutes(app)

	addr := configs.GetEnv("APP_ADDR", ":3000")
	configslog.SLog.Infof("registry.link listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.SLog.Fatalf("Server stopped: %v", err)
	}
}
