// Command boxctl computes box recommendations offline from a YAML catalog seed
// and a YAML order, printing the same JSON documents the HTTP API returns.
//
//	boxctl --catalog catalog.yaml recommend order.yaml
//	boxctl --catalog catalog.yaml mix order.yaml
//	boxctl --catalog catalog.yaml validate order.yaml
package main

import (
	"context"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
