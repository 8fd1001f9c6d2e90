package eots

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Verify reports whether sig is valid for message.
func (sig *Signature) Verify(message string) (bool, error) {
	return Verify(sig.PublicKey, sig.PublicNonce, message, sig.S)
}

type signatureMarshal struct {
	PublicKey   string
	PublicNonce string
	S           string
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&signatureMarshal{
		PublicKey:   sig.PublicKey,
		PublicNonce: sig.PublicNonce,
		S:           sig.S,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded fields
// are validated against the 64-hex-character pattern before sig is touched.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	var sm signatureMarshal
	if err := cbor.Unmarshal(data, &sm); err != nil {
		return fmt.Errorf("eots: unmarshalling signature: %w", err)
	}
	for _, field := range []string{sm.PublicKey, sm.PublicNonce, sm.S} {
		if !hex64.MatchString(field) {
			return errors.New("eots: unmarshalling signature: field is not 64 hex characters")
		}
	}
	sig.PublicKey = sm.PublicKey
	sig.PublicNonce = sm.PublicNonce
	sig.S = sm.S
	return nil
}
