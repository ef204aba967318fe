// Command hu01cat decodes HU01 compressed files from the command line, as
// a thin demonstration shell around the hu01 package.
package main

import (
	"log"
	"os"

	"github.com/ntherning/jdeltasync-go/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
