package main

import (
	"github.com/zerog-odyssey/backend/internal/cli"
)

func main() {
	cli.Execute()
}
