// Package spotifyauth builds authorization requests for the Spotify
// accounts service.
//
// A request is assembled with a Builder, which validates the parameters as
// they arrive, and rendered with ToURI into the URI that is handed to a
// browser or web view. The built value is immutable and can be shipped
// across a process boundary with MarshalBinary / UnmarshalBinary.
package spotifyauth
