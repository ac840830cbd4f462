// File: settings/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"settings"
)

const configFile = "config.properties"

func main() {
	defer os.Remove(configFile)

	p := settings.NewBuilder().FileTypeProperties().Build()
	p.SetProperty("HttpPort", "8081")
	p.SetProperty("MongoServer", "mongodb://10.11.1.5/?replicaSet=mytest")
	p.SetPropertySlice("LogLevel", []string{"Debug", "Info", "Warn"})

	if err := p.StoreToFile(configFile); err != nil {
		log.Fatalf("store to file %s failed: %v", configFile, err)
	}
	log.Printf("store to file %s success", configFile)

	// Reload into a fresh store to show the round trip.
	q := settings.New()
	if err := q.LoadFromFile(configFile); err != nil {
		log.Fatalf("load from file %s failed: %v", configFile, err)
	}

	if port, ok := q.Property("HttpPort"); ok {
		fmt.Println(port)
	}
	if levels, ok := q.PropertySlice("LogLevel"); ok {
		fmt.Println(levels)
	}
	for _, name := range q.PropertyNames() {
		fmt.Println("key:", name)
	}
}
