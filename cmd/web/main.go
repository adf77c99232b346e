package main

import (
	"eventbridge_admin/internal/app"
	"eventbridge_admin/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err)
	}
}
