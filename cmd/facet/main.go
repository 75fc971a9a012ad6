// main is the entry point for the facet CLI.
package main

import (
	"fmt"
	"os"

	"github.com/facetkit/facet/cmd"
	"github.com/facetkit/facet/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Flush profiles and close store connections before deciding the exit code.
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Println("⚠️ ", perr)
	}
	iocache.CloseCaching()

	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
