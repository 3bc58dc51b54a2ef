package sentinel

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Envelope field names. The name travels alongside the token purely for
// human inspection of the serialized form; only the token decides identity.
const (
	envelopeFieldName  = "name"
	envelopeFieldToken = "sentinel"
)

// MarshalJSON encodes the sentinel as a small envelope carrying its
// identity token, e.g.:
//
//	{"sentinel":"0c9c05b7-...","name":"Missing"}
//
// Payload and attributes aren't serialized; they're rehydrated from the
// canonical instance on decode. A nil sentinel encodes as JSON null.
func (s *Sentinel) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	envelope := []byte(`{}`)

	envelope, err := sjson.SetBytes(envelope, envelopeFieldToken, s.token.String())
	if err != nil {
		return nil, err
	}
	envelope, err = sjson.SetBytes(envelope, envelopeFieldName, s.name)
	if err != nil {
		return nil, err
	}

	return envelope, nil
}

// UnmarshalJSON decodes an envelope produced by MarshalJSON, resolving its
// token against the process-wide registry and rehydrating the receiver
// from the canonical instance, so that after decoding both Is and Resolve
// point back at the original sentinel.
//
// Returns an UnknownTokenError for an envelope minted by another process;
// sentinel identity doesn't cross process boundaries.
func (s *Sentinel) UnmarshalJSON(data []byte) error {
	tokenField := gjson.GetBytes(data, envelopeFieldToken)
	if !tokenField.Exists() {
		return fmt.Errorf("sentinel: envelope is missing %q field", envelopeFieldToken)
	}

	token, err := uuid.Parse(tokenField.String())
	if err != nil {
		return fmt.Errorf("sentinel: parsing envelope token: %w", err)
	}

	canonical, ok := defaultRegistry.Lookup(token)
	if !ok {
		return &UnknownTokenError{Token: token}
	}

	*s = *canonical
	return nil
}

// GobEncode implements gob encoding by reusing the JSON envelope, so
// sentinels embedded in larger gob streams round-trip the same way they do
// through JSON.
func (s *Sentinel) GobEncode() ([]byte, error) {
	return s.MarshalJSON()
}

// GobDecode implements gob decoding; see GobEncode and UnmarshalJSON.
func (s *Sentinel) GobDecode(data []byte) error {
	return s.UnmarshalJSON(data)
}
