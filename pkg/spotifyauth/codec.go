package spotifyauth

import (
	"encoding"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// payload is the flat record shipped across a process or component boundary.
// A nil scope list encodes as null so that "no scopes set" and "empty scope
// list" survive the round trip.
type payload struct {
	ClientID     string            `json:"client_id"`
	ResponseType string            `json:"response_type"`
	RedirectURI  string            `json:"redirect_uri"`
	State        string            `json:"state,omitempty"`
	Scopes       []string          `json:"scope"`
	CustomParams map[string]string `json:"custom_params"`
}

var (
	_ encoding.BinaryMarshaler   = AuthorizationRequest{}
	_ encoding.BinaryUnmarshaler = (*AuthorizationRequest)(nil)
)

// MarshalBinary encodes the request so it can be handed to another process
// or component and decoded there with UnmarshalBinary.
func (r AuthorizationRequest) MarshalBinary() ([]byte, error) {
	return json.Marshal(payload{
		ClientID:     r.clientID,
		ResponseType: r.responseType.String(),
		RedirectURI:  r.redirectURI,
		State:        r.state,
		Scopes:       r.scopes,
		CustomParams: r.customParams,
	})
}

// UnmarshalBinary reconstructs a request out of a payload produced by
// MarshalBinary. The fields are accepted as they come, without re-running
// the builder validations; the payload must originate from MarshalBinary in
// the same trust domain, this is not a path for untrusted input.
func (r *AuthorizationRequest) UnmarshalBinary(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return wrapError(ErrorCodeInvalidPayload,
			"cannot decode the authorization request payload", err)
	}

	*r = AuthorizationRequest{
		clientID:     p.ClientID,
		responseType: ResponseType(p.ResponseType),
		redirectURI:  p.RedirectURI,
		state:        p.State,
		scopes:       p.Scopes,
		customParams: p.CustomParams,
	}
	return nil
}
