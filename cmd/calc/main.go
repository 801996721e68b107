package main

import (
	"log"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/calculator"
)

func main() {
	if err := calculator.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
