package main

import (
	"log"

	"github.com/anuragpatil2882004-ui/job-traking/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
