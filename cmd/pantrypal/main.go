package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"pantrypal/internal/app"
	"pantrypal/internal/common"
	"pantrypal/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.Load()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		if errors.Is(err, common.ErrLocked) {
			fmt.Fprintln(os.Stderr, "another PantryPal instance is already using this data directory")
			os.Exit(1)
		}
		log.Fatalf("%v", err)
	}
	err = a.Run(ctx)
	a.Close(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

}
