package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeDeclaredNamespace(t *testing.T) {
	t.Parallel()

	raw := []byte(`<?xml version="1.0"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Header/>
  <soapenv:Body>
    <tns:listUsers xmlns:tns="http://quickpress.com/soap">
      <token>abc</token>
    </tns:listUsers>
  </soapenv:Body>
</soapenv:Envelope>`)

	body, err := parseEnvelope(raw)
	require.NoError(t, err)
	require.Len(t, body.Children, 1)
	assert.Equal(t, "listUsers", body.Children[0].XMLName.Local)
}

func TestParseEnvelopeBarePrefixes(t *testing.T) {
	t.Parallel()

	// Clients that never declare the envelope namespace still get served.
	for _, prefix := range []string{"soapenv", "soap"} {
		raw := []byte(`<` + prefix + `:Envelope><` + prefix + `:Body><tns:listUsers/></` + prefix + `:Body></` + prefix + `:Envelope>`)

		body, err := parseEnvelope(raw)
		require.NoError(t, err, "prefix %s", prefix)
		require.Len(t, body.Children, 1)
	}
}

func TestParseEnvelopeMalformed(t *testing.T) {
	t.Parallel()

	_, err := parseEnvelope([]byte(`<soapenv:Envelope><unclosed`))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestParseEnvelopeMissingWrapper(t *testing.T) {
	t.Parallel()

	_, err := parseEnvelope([]byte(`<request><listUsers/></request>`))
	assert.ErrorIs(t, err, ErrMissingEnvelope)
}

func TestParseEnvelopeMissingBody(t *testing.T) {
	t.Parallel()

	raw := []byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Header/></soapenv:Envelope>`)

	_, err := parseEnvelope(raw)
	assert.ErrorIs(t, err, ErrMissingEnvelope)
}

func TestDecodeRequestAuthenticateUser(t *testing.T) {
	t.Parallel()

	body := mustParse(t, `<soapenv:Envelope><soapenv:Body>
  <tns:authenticateUser>
    <username>admin</username>
    <password>secret</password>
  </tns:authenticateUser>
</soapenv:Body></soapenv:Envelope>`)

	req, err := decodeRequest(body)
	require.NoError(t, err)

	auth, ok := req.(AuthenticateUserRequest)
	require.True(t, ok)
	assert.Equal(t, OpAuthenticateUser, req.Op())
	assert.Equal(t, "admin", auth.Username)
	assert.Equal(t, "secret", auth.Password)
}

func TestDecodeRequestUpdateUser(t *testing.T) {
	t.Parallel()

	body := mustParse(t, `<soapenv:Envelope><soapenv:Body>
  <tns:updateUser>
    <token>tok</token>
    <userId>7</userId>
    <username>carol</username>
  </tns:updateUser>
</soapenv:Body></soapenv:Envelope>`)

	req, err := decodeRequest(body)
	require.NoError(t, err)

	update, ok := req.(UpdateUserRequest)
	require.True(t, ok)
	assert.Equal(t, "tok", update.Token)
	assert.Equal(t, int64(7), update.UserID)
	assert.Equal(t, "carol", update.Username)
	assert.Empty(t, update.Password)
}

func TestDecodeRequestNonNumericUserID(t *testing.T) {
	t.Parallel()

	body := mustParse(t, `<soapenv:Envelope><soapenv:Body>
  <tns:deleteUser><token>tok</token><userId>abc</userId></tns:deleteUser>
</soapenv:Body></soapenv:Envelope>`)

	req, err := decodeRequest(body)
	require.NoError(t, err)

	del, ok := req.(DeleteUserRequest)
	require.True(t, ok)
	assert.Zero(t, del.UserID)
}

func TestDecodeRequestUnknownOperation(t *testing.T) {
	t.Parallel()

	body := mustParse(t, `<soapenv:Envelope><soapenv:Body>
  <tns:dropAllTables/>
</soapenv:Body></soapenv:Envelope>`)

	_, err := decodeRequest(body)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestDecodeRequestUnqualifiedOperation(t *testing.T) {
	t.Parallel()

	// Operation tags outside the service namespace are not recognized.
	body := mustParse(t, `<soapenv:Envelope><soapenv:Body>
  <listUsers><token>tok</token></listUsers>
</soapenv:Body></soapenv:Envelope>`)

	_, err := decodeRequest(body)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func mustParse(t *testing.T, raw string) *node {
	t.Helper()
	body, err := parseEnvelope([]byte(raw))
	require.NoError(t, err)
	return body
}
