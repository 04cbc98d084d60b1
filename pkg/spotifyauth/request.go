package spotifyauth

import (
	"net/url"
	"slices"
	"strings"

	"github.com/luikyv/go-spotify-auth/internal/urlutil"
)

// Builder accumulates the parameters of an authorization request and
// validates them as they arrive. Create one with NewBuilder.
type Builder struct {
	clientID     string
	responseType ResponseType
	redirectURI  string
	state        string
	scopes       []string
	customParams map[string]string
}

// NewBuilder creates a builder holding the three required parameters of an
// authorization request. It results in an error of code
// ErrorCodeInvalidArgument when the client ID or the redirect URI is empty,
// or when the response type is not one of ResponseTypeCode and
// ResponseTypeToken.
func NewBuilder(clientID string, responseType ResponseType, redirectURI string) (*Builder, error) {
	if clientID == "" {
		return nil, newError(ErrorCodeInvalidArgument, "the client id cannot be empty")
	}
	if !responseType.isValid() {
		return nil, newError(ErrorCodeInvalidArgument, "the response type must be code or token")
	}
	if redirectURI == "" {
		return nil, newError(ErrorCodeInvalidArgument, "the redirect uri cannot be empty")
	}

	return &Builder{
		clientID:     clientID,
		responseType: responseType,
		redirectURI:  redirectURI,
		customParams: map[string]string{},
	}, nil
}

// State stores an opaque state parameter, replacing any previous value.
// The value is passed through without validation; an empty string means the
// request carries no state.
func (b *Builder) State(state string) *Builder {
	b.state = state
	return b
}

// Scopes stores the ordered list of scopes to request, replacing any
// previous value. Individual scopes are not validated here, but they must
// not contain spaces since the list is rendered space-joined.
func (b *Builder) Scopes(scopes ...string) *Builder {
	b.scopes = scopes
	return b
}

// CustomParam adds a non-reserved query parameter to the request. The last
// value written for a given key wins. It results in an error of code
// ErrorCodeInvalidArgument when the key or the value is empty, or when the
// key is one of the parameters the request already renders on its own.
func (b *Builder) CustomParam(key, value string) error {
	if key == "" {
		return newError(ErrorCodeInvalidArgument, "the custom parameter key cannot be empty")
	}
	if value == "" {
		return newError(ErrorCodeInvalidArgument, "the custom parameter value cannot be empty")
	}
	if isReservedParam(key) {
		return newError(ErrorCodeInvalidArgument,
			"the custom parameter key "+key+" is reserved")
	}

	b.customParams[key] = value
	return nil
}

// Build creates the immutable request value out of the current builder
// state. It can be called any number of times and does not reset the
// builder; each call copies the accumulated state, so later changes to the
// builder don't leak into values built before.
func (b *Builder) Build() AuthorizationRequest {
	req := AuthorizationRequest{
		clientID:     b.clientID,
		responseType: b.responseType,
		redirectURI:  b.redirectURI,
		state:        b.state,
		customParams: make(map[string]string, len(b.customParams)),
	}

	if b.scopes != nil {
		req.scopes = make([]string, len(b.scopes))
		copy(req.scopes, b.scopes)
	}
	for key, value := range b.customParams {
		req.customParams[key] = value
	}

	return req
}

// AuthorizationRequest is the immutable set of parameters sent to the
// accounts authorization endpoint. Values built from an unchanged builder
// compare equal.
type AuthorizationRequest struct {
	clientID     string
	responseType ResponseType
	redirectURI  string
	state        string
	scopes       []string
	customParams map[string]string
}

func (r AuthorizationRequest) ClientID() string {
	return r.clientID
}

func (r AuthorizationRequest) ResponseType() ResponseType {
	return r.responseType
}

func (r AuthorizationRequest) RedirectURI() string {
	return r.redirectURI
}

// State returns the opaque state parameter. An empty string means the
// request carries no state.
func (r AuthorizationRequest) State() string {
	return r.state
}

// Scopes returns a copy of the requested scopes in the order they were set,
// or nil when no scopes were set.
func (r AuthorizationRequest) Scopes() []string {
	if r.scopes == nil {
		return nil
	}

	scopes := make([]string, len(r.scopes))
	copy(scopes, r.scopes)
	return scopes
}

// CustomParam looks up a single custom parameter by key.
func (r AuthorizationRequest) CustomParam(key string) (string, bool) {
	value, ok := r.customParams[key]
	return value, ok
}

// ToURL renders the request as the authorization endpoint URL. The query
// keeps a fixed parameter order: client_id, response_type, redirect_uri,
// show_dialog, then scope and state when present, then the custom
// parameters in ascending key order.
func (r AuthorizationRequest) ToURL() *url.URL {
	return &url.URL{
		Scheme:   accountsScheme,
		Host:     accountsAuthority,
		Path:     accountsPath,
		RawQuery: urlutil.EncodeQuery(r.queryParams()),
	}
}

// ToURI renders the request as the authorization endpoint URI string.
func (r AuthorizationRequest) ToURI() string {
	return r.ToURL().String()
}

func (r AuthorizationRequest) queryParams() []urlutil.QueryParam {
	params := []urlutil.QueryParam{
		{Key: paramClientID, Value: r.clientID},
		{Key: paramResponseType, Value: r.responseType.String()},
		{Key: paramRedirectURI, Value: r.redirectURI},
		{Key: paramShowDialog, Value: "true"},
	}

	if len(r.scopes) > 0 {
		params = append(params, urlutil.QueryParam{
			Key:   paramScope,
			Value: strings.Join(r.scopes, scopeSeparator),
		})
	}
	if r.state != "" {
		params = append(params, urlutil.QueryParam{
			Key:   paramState,
			Value: r.state,
		})
	}

	customKeys := make([]string, 0, len(r.customParams))
	for key := range r.customParams {
		customKeys = append(customKeys, key)
	}
	slices.Sort(customKeys)
	for _, key := range customKeys {
		params = append(params, urlutil.QueryParam{
			Key:   key,
			Value: r.customParams[key],
		})
	}

	return params
}
