package main

import (
	"zidesign/pkg/config"
	app "zidesign/services/works/internal/app"
)

// @title           Works Service API
// @version         1.0
// @description     Portfolio works: listing, submission with image upload, moderation and removal

// @host      localhost:8002
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
