package binarycodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offerCreateTx and its expected hex are the same OfferCreate vector
// exercised directly against the STObject codec in the types package; here
// it is driven through the top-level Encode/Decode facade instead.
var offerCreateTx = map[string]any{
	"Account":       "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	"Expiration":    uint32(595640108),
	"Fee":           "10",
	"Flags":         uint32(524288),
	"OfferSequence": uint32(1752791),
	"Sequence":      uint32(1752792),
	"SigningPubKey": "03EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3",
	"TakerGets":     "15000000000",
	"TakerPays": map[string]any{
		"currency": "USD",
		"issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
		"value":    "7072.8",
	},
	"TransactionType": "OfferCreate",
	"TxnSignature":    "30440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE02204CFD241E86F17E011298FC1A39B63386C74306A5DE047E213B0F29EFA4571C2C",
}

const offerCreateHex = "120007220008000024001abed82a2380bf2c2019001abed764d55920ac9391400000000000000000000000000055534400000000000a20b3c85f482532a9578dbb3950b85ca06594d165400000037e11d60068400000000000000a732103ee83bb432547885c219634a1bc407a9db0474145d69737d09ccdc63e1dee7fe3744630440220143759437c04f7b61f012563afe90d8dafc46e86035e1d965a9ced282c97d4ce02204cfd241e86f17e011298fc1a39b63386c74306a5de047e213b0f29efa4571c2c8114dd76483facdee26e60d8a586bb58d09f27045c46"

func TestEncode_OfferCreate(t *testing.T) {
	result, err := Encode(offerCreateTx)
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(offerCreateHex), result)
}

func TestDecode_OfferCreate(t *testing.T) {
	decoded, err := Decode(offerCreateHex)
	require.NoError(t, err)

	assert.Equal(t, "OfferCreate", decoded["TransactionType"])
	assert.Equal(t, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys", decoded["Account"])
	assert.Equal(t, uint32(524288), decoded["Flags"])
	assert.Equal(t, "10", decoded["Fee"])
	assert.Equal(t, uint32(1752791), decoded["OfferSequence"])

	takerPays, ok := decoded["TakerPays"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "USD", takerPays["currency"])
	assert.Equal(t, "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", takerPays["issuer"])
}

func TestEncodeDecode_Roundtrip(t *testing.T) {
	encoded, err := Encode(offerCreateTx)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, encoded, reencoded)
}

func TestTransactionID(t *testing.T) {
	id, err := TransactionID(offerCreateTx)
	require.NoError(t, err)
	assert.Len(t, id, 64)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestEncodeForSigning_PrefixAndDeterminism(t *testing.T) {
	blob, err := EncodeForSigning(offerCreateTx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(blob, "53545800"))

	blob2, err := EncodeForSigning(offerCreateTx)
	require.NoError(t, err)
	assert.Equal(t, blob, blob2)
}

func TestDecode_MalformedHex(t *testing.T) {
	_, err := Decode("not-hex")
	require.Error(t, err)
}

func TestDecode_TruncatedField(t *testing.T) {
	// "22" is the Flags header (type 2, field 2), which requires 4 value
	// bytes that are never supplied.
	_, err := Decode("22")
	require.Error(t, err)
}
