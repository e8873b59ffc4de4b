package digest

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/septic"
	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/fp7"
	"github.com/consensys/septic/logger"
)

// rawDigest is the serialized form of a Digest. The version and modulus
// headers make deserialization robust against bytes produced by an
// incompatible binary.
type rawDigest struct {
	Version string
	Modulus string
	X       [7]uint32
	Y       [7]uint32
}

// ToBytes serializes the digest with its serialization header.
func (d Digest) ToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}

	raw := rawDigest{
		Version: septic.Version.String(),
		Modulus: strconv.FormatUint(uint64(babybear.Modulus), 16),
	}
	for i := 0; i < 7; i++ {
		raw.X[i] = d.X[i].AsCanonicalU32()
		raw.Y[i] = d.Y[i].AsCanonicalU32()
	}

	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(&raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes deserializes the digest from a byte slice.
func (d *Digest) FromBytes(data []byte) error {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return err
	}

	var raw rawDigest
	if err := dm.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return fmt.Errorf("decode digest: %w", err)
	}

	if err := raw.checkSerializationHeader(); err != nil {
		return err
	}

	for i := 0; i < 7; i++ {
		if raw.X[i] >= babybear.Modulus || raw.Y[i] >= babybear.Modulus {
			return fmt.Errorf("coordinate %d of serialized digest is not reduced", i)
		}
	}
	d.X = fp7.FromCanonicalU32s(raw.X)
	d.Y = fp7.FromCanonicalU32s(raw.Y)
	return nil
}

// checkSerializationHeader parses the modulus and version headers
//
// This is meant to be used at the deserialization step, and will error
// for illegal values
func (raw *rawDigest) checkSerializationHeader() error {
	binaryVersion := septic.Version
	objectVersion, err := semver.Parse(raw.Version)
	if err != nil {
		return fmt.Errorf("when parsing digest version: %w", err)
	}

	if binaryVersion.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", binaryVersion.String()).Str("object", objectVersion.String()).Msg("binary version mismatch with serialized digest. there are no guarantees on compatibility")
	}

	modulus, err := strconv.ParseUint(raw.Modulus, 16, 64)
	if err != nil {
		return fmt.Errorf("when parsing serialized modulus: %w", err)
	}
	if modulus != uint64(babybear.Modulus) {
		return fmt.Errorf("unsupported modulus %s", raw.Modulus)
	}
	return nil
}
