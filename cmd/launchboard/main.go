// Command launchboard fetches SpaceX launches, rockets and launchpads and
// lets you filter them by outcome, launch site region and free text.
//
// Usage:
//
//	launchboard browse                     interactive terminal browser
//	launchboard list [filters]             print matching launches
//	launchboard regions                    print regions usable with --location
//	launchboard serve                      JSON API on server.addr
//	launchboard export --out FILE [filters] write matches to a SQLite file
//
// Filters:
//
//	--outcome all|success|failed|upcoming
//	--location REGION (or "all")
//	--search TEXT      case-insensitive match on mission or rocket name
//
// Configuration is read from launchboard.yaml (or --config) and
// LAUNCHBOARD_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
