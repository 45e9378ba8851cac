package main

import (
	"os"

	"github.com/Lumos-Labs-HQ/martgen/cmd"
	"github.com/Lumos-Labs-HQ/martgen/internal/logger"
)

func main() {
	defer logger.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
