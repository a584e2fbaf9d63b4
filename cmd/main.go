package main

import (
	api "Predictor"
)

func main() {
	api.Run()
}
