package main

import "localink_backend/internal/app"

func main() {
	app.Run()
}
