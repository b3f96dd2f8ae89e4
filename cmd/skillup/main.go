package main

import (
	"context"
	"log"
	"os"

	"skillup/internal/buildinfo"
	"skillup/internal/cli"
	"skillup/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
