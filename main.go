package main

import (
	"fmt"
	"os"
	"scribe/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := cmd.Migrate(); err != nil {
			fmt.Printf("migration run into an error: %s", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
