//go:build tinygo

package main

import (
	"presto/app"
	"presto/hal"
)

func main() {
	app.Run(hal.New())
}
