// Command socialnet is an interactive front end for the social package.
//
//	socialnet              # text menu (same as `socialnet menu`)
//	socialnet demo         # scripted walkthrough
//	socialnet --log-level=debug --suggest-limit=5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
