package main

import (
	"ordenes_xpto/internal/adapter/driver"

	_ "github.com/joho/godotenv/autoload"
)

// Demo run of the repair service work orders.
//
// Environment:
//   PERSISTENCE_SINK    console (default), dynamodb or sqlite
//   DEMO_SCENARIO_FILE  YAML scenario; the embedded reference flow when empty

func main() {
	driver.Run()
}
