package main

import (
	"github.com/humanbelnik/moviehub/internal/app"
	"github.com/humanbelnik/moviehub/internal/config"
)

func main() {
	app.Go(config.Load())
}
