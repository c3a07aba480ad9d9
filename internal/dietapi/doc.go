// Package dietapi provides the HTTP client for the handydiet dataset server.
//
// # Overview
//
// The viewer loads the weekly plan exactly once per session with
// Client.FetchDiet, which issues GET /api/diet and decodes the body into an
// order-preserving diet.Dataset. A status of 400 or above, a transport
// failure, or a body that is not a dataset is returned as an error. The
// caller treats that error as terminal; the client never retries.
//
// # Client Usage
//
//	client, err := dietapi.NewClient("127.0.0.1:3000")
//	if err != nil {
//		return err
//	}
//	data, err := client.FetchDiet(ctx)
//
// The address may be a bare host:port or a full URL; any path, query or
// fragment is discarded. Requests carry a "handydiet/0.1" User-Agent and an
// Accept: application/json header and time out after ten seconds.
//
// # Error Bodies
//
// When the server answers with a JSON body of the form {"error": "..."},
// the message is included in the returned error, e.g.
//
//	api /api/diet returned status 500: Failed to load diet data
//
// # Testing
//
// Code that only needs a dataset should accept a Fetcher, which *Client
// implements, so tests can supply a canned dataset without a server.
package dietapi
