package main

import (
	"flag"

	"github.com/joho/godotenv"

	"registry.link/configs"
	"registry.link/configs/configslog"
	"registry.link/database"
)

func main() {
	_ = godotenv.Load()
	if err := configslog.Init(configs.GetEnv("APP_ENV", "development")); err != nil {
		panic(err)
	}
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatalf("Database connection failed: %v", err)
	}

	database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag)
}
