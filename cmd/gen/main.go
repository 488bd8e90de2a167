package main

import (
	"DakaCamp/internal/repository"
	"DakaCamp/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
