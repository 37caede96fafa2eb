// Package smugmug provides types, interfaces, and helpers for working
// with the SmugMug v2 API.
//
// # Overview
//
// The smugmug package defines the domain types (User, Node, Album,
// Image), the error taxonomy, the response envelope, and the interfaces
// for resource-oriented clients (UsersClient, NodesClient, AlbumsClient,
// ImagesClient). A concrete implementation of these clients is provided
// by the smugclient package, which wires configuration, transport,
// request signing, and rate-limit tracking. Most consumers should
// import smugclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := smugclient.New(&smugmug.Config{
//	    APIKey:      "consumer-key",
//	    APISecret:   "consumer-secret",
//	    AccessToken: "access-token",
//	    TokenSecret: "token-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().GetAuthenticated(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// With only an API key configured, the client runs unsigned and can
// read public resources.
//
// # Pagination
//
// Collection endpoints return an Iterator that follows the NextPage
// cursor lazily. Nothing is fetched beyond what is consumed:
//
//	it, err := cli.Nodes().Children(ctx, node, smugmug.NewChildrenParams().WithType(smugmug.NodeTypeFilterAlbum))
//	if err != nil { /* handle error */ }
//	for it.HasNext() {
//	  child, err := it.Next()
//	  if err != nil { break }
//	  _ = child
//	}
//
// # Errors
//
// Failures carry their cause as a distinct type: APIError for envelope
// failure codes, RateLimitError for throttling, TransportError for
// HTTP-level problems, MalformedResponseError for undecodable bodies,
// and UnknownCodeError for codes outside the documented sets. Helpers
// such as IsNotFound, IsUnauthorized, and IsRateLimited make it easy to
// branch on common cases.
//
// # Rate limiting
//
// Every response's rate-limit headers update a snapshot retrievable via
// Client.LastRateLimit. The client never sleeps or retries on its own;
// callers decide how to react to RateLimitError and the snapshot.
package smugmug
