package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
)

// Transport-level failures. Anything else the endpoint reports inside a
// normal response payload.
var (
	ErrMalformedEnvelope = errors.New("document XML invalide")
	ErrMissingEnvelope   = errors.New("enveloppe SOAP absente")
	ErrUnknownOperation  = errors.New("opération SOAP non reconnue")
)

// envelopeNS is the SOAP 1.1 envelope namespace. Clients that never declare
// it are tolerated through the bare prefixes below.
const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// serviceNS is the service namespace operation tags are qualified with.
const serviceNS = "http://quickpress.com/soap"

// node is a generic XML element. The decoder fills Children with every
// child element in document order and Text with the flattened character
// data.
type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

// parseEnvelope decodes a raw request body and unwraps it down to the Body
// element. The envelope wrapper is matched on the SOAP namespace or on the
// soapenv/soap prefixes when the client never declares the namespace.
func parseEnvelope(raw []byte) (*node, error) {
	var root node
	if err := xml.NewDecoder(bytes.NewReader(raw)).Decode(&root); err != nil {
		return nil, ErrMalformedEnvelope
	}

	if !isEnvelope(root.XMLName) {
		return nil, ErrMissingEnvelope
	}

	for i := range root.Children {
		if isBody(root.Children[i].XMLName) {
			return &root.Children[i], nil
		}
	}
	return nil, ErrMissingEnvelope
}

func isEnvelope(name xml.Name) bool {
	return name.Local == "Envelope" && acceptedEnvelopeSpace(name.Space)
}

func isBody(name xml.Name) bool {
	return name.Local == "Body" && acceptedEnvelopeSpace(name.Space)
}

func acceptedEnvelopeSpace(space string) bool {
	switch space {
	case envelopeNS, "soapenv", "soap":
		return true
	}
	return false
}

// childText returns the trimmed text of the first child named local, and
// whether such a child exists.
func (n *node) childText(local string) (string, bool) {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return strings.TrimSpace(n.Children[i].Text), true
		}
	}
	return "", false
}
