package main

import (
	"log"
	"os"

	"github.com/abiiranathan/minigrep/cli"
)

func main() {
	// Errors go to stderr exactly as Describe formats them.
	log.SetPrefix("")
	log.SetFlags(0)

	cmd := cli.NewCommand(os.LookupEnv)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		log.Fatalln(cli.Describe(err))
	}
}
