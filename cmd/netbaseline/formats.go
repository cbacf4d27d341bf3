// Package main - report format registrations.
//
// Blank-import each format package to trigger its init() function, which
// registers the format with the report registry.
//
// To add a new format, add a blank import here:
//
//	_ "github.com/ironclad-sec/netbaseline/internal/report/sarif"
package main

import (
	// Register all supported report formats.
	_ "github.com/ironclad-sec/netbaseline/internal/report/csv"
	_ "github.com/ironclad-sec/netbaseline/internal/report/html"
	_ "github.com/ironclad-sec/netbaseline/internal/report/json"
)
