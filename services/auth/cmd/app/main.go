package main

import (
	"zidesign/pkg/config"
	app "zidesign/services/auth/internal/app"
)

// @title           Auth Service API
// @version         1.0
// @description     Registration, login and profile updates for the ZiDesign portfolio site

// @host      localhost:8001
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
