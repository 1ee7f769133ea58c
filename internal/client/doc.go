// Package client implements the blog command-line client.
//
// [App] parses a subcommand such as "posts create" with its own flag set,
// calls the REST API through [adapter.BlogClient] and prints the JSON result.
package client
