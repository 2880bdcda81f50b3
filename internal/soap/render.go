package soap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Result is the flat field set an operation reply can carry. Nil fields
// are skipped entirely when rendering, never emitted empty.
type Result struct {
	Success *bool
	Message *string
	Role    *string
	Token   *string
	UserID  *int64
	Users   *string
}

func boolField(v bool) *bool    { return &v }
func strField(v string) *string { return &v }
func intField(v int64) *int64   { return &v }

// renderEnvelope serializes a result into a response envelope whose single
// body child is <{operation}Response>. Fields are emitted in a fixed order:
// success, message, role, token, userId, users.
func renderEnvelope(operation string, r Result) []byte {
	var body strings.Builder
	if r.Success != nil {
		writeField(&body, "success", strconv.FormatBool(*r.Success))
	}
	if r.Message != nil {
		writeField(&body, "message", *r.Message)
	}
	if r.Role != nil {
		writeField(&body, "role", *r.Role)
	}
	if r.Token != nil {
		writeField(&body, "token", *r.Token)
	}
	if r.UserID != nil {
		writeField(&body, "userId", strconv.FormatInt(*r.UserID, 10))
	}
	if r.Users != nil {
		writeField(&body, "users", *r.Users)
	}

	responseTag := operation + "Response"
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="%s" xmlns:tns="%s">
   <soapenv:Header/>
   <soapenv:Body>
      <%s>%s</%s>
   </soapenv:Body>
</soapenv:Envelope>`, envelopeNS, serviceNS, responseTag, body.String(), responseTag))
}

func writeField(b *strings.Builder, tag, value string) {
	b.WriteString("<" + tag + ">")
	// EscapeText on a Builder cannot fail.
	xml.EscapeText(b, []byte(value)) //nolint:errcheck
	b.WriteString("</" + tag + ">")
}
