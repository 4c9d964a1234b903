package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// appendRecord re-encodes one JSON value token by token.
func appendRecord(buf *bytes.Buffer, record json.RawMessage) error {
	decoder := json.NewDecoder(bytes.NewReader(record))
	decoder.UseNumber()
	if err := appendValue(buf, decoder); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after the record")
	}
	return nil
}

func appendValue(buf *bytes.Buffer, decoder *json.Decoder) error {
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("decoder.Token > %w", err)
	}

	switch v := token.(type) {
	case json.Delim:
		switch v {
		case '{':
			buf.WriteByte('{')
			for first := true; decoder.More(); first = false {
				if !first {
					buf.WriteString(", ")
				}
				key, err := decoder.Token()
				if err != nil {
					return fmt.Errorf("decoder.Token > %w", err)
				}
				appendString(buf, key.(string))
				buf.WriteString(": ")
				if err := appendValue(buf, decoder); err != nil {
					return err
				}
			}
			buf.WriteByte('}')
		case '[':
			buf.WriteByte('[')
			for first := true; decoder.More(); first = false {
				if !first {
					buf.WriteString(", ")
				}
				if err := appendValue(buf, decoder); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
		default:
			return fmt.Errorf("unexpected delimiter %v", v)
		}
		// closing delimiter
		if _, err := decoder.Token(); err != nil {
			return fmt.Errorf("decoder.Token > %w", err)
		}
	case string:
		appendString(buf, v)
	case json.Number:
		buf.WriteString(v.String())
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unexpected token %v", v)
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// appendString quotes s escaping only quotes, backslashes and control characters.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[r>>4])
				buf.WriteByte(hexDigits[r&0xF])
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
