// Package csvloader reads the document table from a CSV file with a header row.
package csvloader
