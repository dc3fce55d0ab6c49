// Package sarvcrm provides types, interfaces, and helpers for working with
// the SarvCRM HTTP API.
//
// # Overview
//
// The API multiplexes every operation through a single endpoint: the query
// parameters method and module select the behavior, the body carries JSON,
// and every response wraps its payload in a {data, message} envelope. This
// package defines the domain types (Record, Fields, ListOptions,
// ModuleDescriptor), the error kinds, the pure request-parameter and
// envelope helpers, and the Client interface with one typed accessor per
// CRM module. A concrete implementation is provided by the sarvclient
// package, which wires configuration, transport, and the session token.
// Most consumers should import sarvclient to construct a client and then
// interact with the module handles exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Radin-System/go-sarvcrm-api/pkg/sarvclient"
//	  "github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := sarvclient.New(&sarvcrm.Config{
//	    BaseURL:  "https://app.sarvcrm.com/API.php",
//	    UserType: "company",
//	    Username: "user",
//	    Password: "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err := cli.Login(ctx); err != nil { log.Fatal(err) }
//	  defer cli.Logout()
//
//	  // List the first page of accounts
//	  accounts, err := cli.Accounts().List(ctx, &sarvcrm.ListOptions{Limit: 50})
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// # Modules
//
// All modules share one operation set (Create, List, Get, Update, Delete,
// GetFields, GetRelationships, SaveRelationships); the Modules table lists
// the known descriptors and Client.Module looks handles up by wire name.
//
// # Errors
//
// Status ranges map to error kinds: 3xx to RedirectionError, 4xx to
// APIError, 5xx and network failures to TransportError. Helpers such as
// IsNotFound and IsUnauthorized make it easy to branch on common cases, and
// sentinel errors (ErrEmptyResult, ErrAuthenticationFailed, ...) cover the
// client-side conditions.
//
// # Paging and batching
//
// ListPager iterates limit/offset pages of a module listing; BatchExecutor
// runs independent operations concurrently with a bounded worker count.
package sarvcrm
