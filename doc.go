// Package webflow implements the client side of the OAuth 2.0 "web server"
// (authorization-code) profile as specified in draft-ietf-oauth-v2-06.
//
// The flow is caller-driven and consists of three independent value types
// used in sequence:
//
//   - AuthorizationURL builds the URL the end user is redirected to for
//     granting or denying access.
//   - AuthorizationResponse is parsed from the callback URL the authorization
//     server redirects back to.
//   - AccessTokenRequest builds and executes the exchange of the one-time
//     authorization code for an access token.
//
// None of the three calls another; a web handler typically composes them:
//
//	resp, err := webflow.ParseAuthorizationResponse(callbackURL)
//	if err != nil {
//	    // malformed URL
//	}
//	if resp.Denied() {
//	    // end user denied authorization
//	}
//	if !resp.Granted() {
//	    authorizeURL := webflow.NewAuthorizationURL(authEndpoint)
//	    authorizeURL.ClientID = clientID
//	    authorizeURL.RedirectURI = redirectURI
//	    http.Redirect(w, r, authorizeURL.String(), http.StatusFound)
//	    return
//	}
//	tokenReq := webflow.NewAccessTokenRequest(tokenEndpoint)
//	tokenReq.ClientID = clientID
//	tokenReq.ClientSecret = clientSecret
//	tokenReq.Code = resp.Code
//	tokenReq.RedirectURI = redirectURI
//	tokenResp, err := tokenReq.Execute(ctx)
//
// The Flow type composes the three steps with optional token storage, rate
// limiting, and OpenTelemetry instrumentation for applications that want a
// single configured entry point.
package webflow
