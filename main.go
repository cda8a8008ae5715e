package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/tdamianovich/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
