// cmd/photo-gps-report/main.go
package main

import (
	"github.com/bstardust/photo-gps-report/internal/logger"
	"github.com/bstardust/photo-gps-report/pkg/cli"
)

func main() {
	// Initialize logger
	logger.Init()

	// Execute CLI
	cli.Execute()
}
