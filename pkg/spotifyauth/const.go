package spotifyauth

const (
	accountsScheme    = "https"
	accountsAuthority = "accounts.spotify.com"
	accountsPath      = "/authorize"

	scopeSeparator = " "
)

// Query parameters understood by the accounts authorization endpoint.
const (
	paramClientID     = "client_id"
	paramResponseType = "response_type"
	paramRedirectURI  = "redirect_uri"
	paramState        = "state"
	paramScope        = "scope"
	paramShowDialog   = "show_dialog"
)

// ResponseType selects the grant flavor of the authorization request.
type ResponseType string

const (
	// ResponseTypeCode requests the authorization code grant.
	ResponseTypeCode ResponseType = "code"
	// ResponseTypeToken requests the implicit grant.
	ResponseTypeToken ResponseType = "token"
)

func (rt ResponseType) String() string {
	return string(rt)
}

func (rt ResponseType) isValid() bool {
	return rt == ResponseTypeCode || rt == ResponseTypeToken
}

// isReservedParam reports whether key is one of the query parameters the
// request renders on its own. Custom parameters cannot use these keys, as
// that would result in duplicate entries in the query string.
func isReservedParam(key string) bool {
	switch key {
	case paramClientID, paramResponseType, paramRedirectURI,
		paramState, paramScope, paramShowDialog:
		return true
	}
	return false
}
