/*
Package marketsdk provides a client SDK for the AgriOasis marketplace API.

The package is organized around two types:

  - Client: public operations (signup, login, catalogue browsing)
  - Session: authenticated operations carrying a bearer session token

Create a Client, authenticate, and work through the returned Session:

	client := marketsdk.NewClient("https://market.example.com")
	session, err := client.Login(ctx, "john@farm.com", "farmer123", "farmer")
	if err != nil {
		// handle
	}
	orders, err := session.FarmerOrders(ctx, session.User.ID)

Session tokens are stateless JWTs; the SDK performs no refresh. When a
call returns an *APIError with StatusCode 401 the session has expired
and the caller should log in again.
*/
package marketsdk
