// Package smugclient provides the primary entry point for constructing a
// SmugMug v2 API client that implements the smugmug.Client interface.
//
// It layers configuration, the signed HTTP transport, and rate-limit
// tracking on top of the resource interfaces and types defined in the
// smugmug package. Most applications should import smugclient to build a
// client, then use the returned smugmug.Client to access resource-specific
// clients, for example Users(), Nodes(), Albums(), and Images().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/photoflow-io/smugmug/pkg/smugclient"
//	  "github.com/photoflow-io/smugmug/pkg/smugmug"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Fully signed: a complete OAuth 1.0a credential tuple.
//	  cli, err := smugclient.New(&smugmug.Config{
//	    APIKey:      "consumer-key",
//	    APISecret:   "consumer-secret",
//	    AccessToken: "access-token",
//	    TokenSecret: "token-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or unsigned, for endpoints that accept key-only access:
//	  cli, err = smugclient.NewWithAPIKey("consumer-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the smugmug.Client interface
//	  user, err := cli.Users().GetAuthenticated(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Credentials
//
// A configuration with a partial token pair (an access token without its
// secret, or the reverse) is rejected at construction with
// smugmug.ErrIncompleteCredentials. Obtaining tokens is out of scope;
// the client consumes credentials issued elsewhere.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithTokens that wrap New with the appropriate configuration.
package smugclient
