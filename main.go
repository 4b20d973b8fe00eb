package main

import (
	"exusiai.dev/equipsorter/cmd/app"
)

func main() {
	app.Run()
}
