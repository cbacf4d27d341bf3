// MCP server standalone entrypoint.
// This is a convenience binary that only starts the MCP server.
package main

import (
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ironclad-sec/netbaseline/internal/catalog"
	"github.com/ironclad-sec/netbaseline/internal/mcpserver"
)

func main() {
	var cat *catalog.Catalog
	var err error

	if len(os.Args) > 1 {
		cat, err = catalog.Load(os.Args[1])
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Printf("Loaded catalog: %d questions", len(cat.Questions()))

	mcpSrv := mcpserver.NewMCPServer(cat)

	log.Println("Starting netbaseline MCP server on stdio...")
	if err := server.ServeStdio(mcpSrv); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
