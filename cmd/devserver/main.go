// Command devserver checks the local setup of the mobile PWA and serves it
// on localhost with the browser opened automatically.
package main

import (
	"context"
	"os"

	"labelsmobile/cmd/devserver/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	app := commands.NewApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
