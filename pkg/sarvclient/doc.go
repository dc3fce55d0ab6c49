// Package sarvclient provides the primary entry point for constructing a
// SarvCRM API client that implements the sarvcrm.Client interface.
//
// It layers configuration, HTTP transport, and session handling on top of
// the module interfaces and types defined in the sarvcrm package. Most
// applications should import sarvclient to build a client, then use the
// returned sarvcrm.Client to access module handles, for example Accounts(),
// Contacts(), Cases(), etc.
//
// Quick start
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
//
//	  // With username/password credentials. The password is hashed at
//	  // construction; Login exchanges it for a session token.
//	  cli, err := sarvclient.New(&sarvcrm.Config{
//	    BaseURL:  "https://app.sarvcrm.com/API.php",
//	    UserType: "corporate",
//	    Username: "user",
//	    Password: "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err = cli.Login(ctx); err != nil { log.Fatal(err) }
//	  defer cli.Logout()
//
//	  // Or with a session token you already have:
//	  cli, err = sarvclient.New(&sarvcrm.Config{
//	    BaseURL:     "https://app.sarvcrm.com/API.php",
//	    AccessToken: "a1b2c3...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use module handles via the sarvcrm.Client interface
//	  contacts, err := cli.Contacts().List(ctx, &sarvcrm.ListOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// # Sessions
//
// Login stores the returned token on the client, and every later request
// carries it as a bearer token. Logout clears the token locally; the server
// side of the session expires on its own.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithPassword that wrap New with the appropriate configuration.
package sarvclient
