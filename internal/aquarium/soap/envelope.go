package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	EnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	SecurityNS = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
)

type requestEnvelope struct {
	XMLName xml.Name       `xml:"soap:Envelope"`
	SoapNS  string         `xml:"xmlns:soap,attr"`
	WsseNS  string         `xml:"xmlns:wsse,attr,omitempty"`
	Header  *requestHeader `xml:"soap:Header,omitempty"`
	Body    requestBody    `xml:"soap:Body"`
}

type requestHeader struct {
	Security security `xml:"wsse:Security"`
}

type security struct {
	UsernameToken usernameToken `xml:"wsse:UsernameToken"`
}

type usernameToken struct {
	Username string `xml:"wsse:Username"`
	Password string `xml:"wsse:Password"`
}

type requestBody struct {
	Content []byte `xml:",innerxml"`
}

type responseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault   *Fault `xml:"Fault"`
		Content []byte `xml:",innerxml"`
	} `xml:"Body"`
}

// Credentials are sent as a WS-Security UsernameToken on every request.
type Credentials struct {
	Username string
	Password string
}

// encodeRequest wraps payload in an element named action (in namespace ns)
// inside a SOAP 1.1 envelope.
func encodeRequest(ns, action string, payload any, creds Credentials) ([]byte, error) {
	var op bytes.Buffer
	enc := xml.NewEncoder(&op)
	start := xml.StartElement{Name: xml.Name{Space: ns, Local: action}}
	if payload == nil {
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	} else if err := enc.EncodeElement(payload, start); err != nil {
		return nil, fmt.Errorf("encode %s: %w", action, err)
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	env := requestEnvelope{
		SoapNS: EnvelopeNS,
		Body:   requestBody{Content: op.Bytes()},
	}
	if creds.Username != "" {
		env.WsseNS = SecurityNS
		env.Header = &requestHeader{Security: security{UsernameToken: usernameToken{
			Username: creds.Username,
			Password: creds.Password,
		}}}
	}

	out, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// decodeResponse extracts the body of a SOAP response into out. A SOAP fault
// is returned as *Fault.
func decodeResponse(data []byte, out any) error {
	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Body.Fault != nil {
		return env.Body.Fault
	}
	if out == nil {
		return nil
	}
	if err := xml.Unmarshal(env.Body.Content, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
