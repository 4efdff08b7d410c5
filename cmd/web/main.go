package main

import "hiretrack_backend/internal/app"

func main() {
	app.Run()
}
