package main

import "internhub_backend/internal/app"

func main() {
	app.Run()
}
