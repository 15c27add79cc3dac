// Package jsonsrc builds a tree.Value from a JSON byte stream (§6's JSON
// parser collaborator, interface specified but left out of scope by the
// spec itself): it consumes encoding/json.Decoder's token stream, the
// idiomatic Go equivalent of the spec's callback stream {StartObject, Key,
// EndObject, StartArray, EndArray, String, Int64, Double, Bool, Null}, and
// feeds the result straight into the tree builder (C12). The produced
// tree.Value can then optionally be finalized (C11).
package jsonsrc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/kesselring/dartbuf/tree"
)

// Decode reads one JSON value from r and returns it as a tree.Value.
// JSON numbers written as integer literals (no fraction or exponent) that
// fit in an int64 become tree integers; everything else numeric, including
// integral values written as 2.0 or 1e3, becomes a tree decimal,
// matching §3's integer/decimal width-selection split at the tree-to-wire
// boundary (the tree form itself just needs to pick one of the two
// logical kinds up front).
func Decode(r io.Reader) (tree.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return tree.Value{}, err
	}
	v, err := decodeValue(dec, tok)
	if err != nil {
		return tree.Value{}, err
	}
	if dec.More() {
		return tree.Value{}, fmt.Errorf("jsonsrc: trailing data after top-level value")
	}
	return v, nil
}

// DecodeBytes is a convenience wrapper over Decode for an in-memory
// buffer, the common case when a document arrives as a single JSON blob
// rather than streamed.
func DecodeBytes(data []byte) (tree.Value, error) {
	return Decode(bytes.NewReader(data))
}

// decodeValue interprets one already-read token, recursing into
// decodeObject/decodeArray for the two container delimiters.
func decodeValue(dec *json.Decoder, tok json.Token) (tree.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return tree.Value{}, fmt.Errorf("jsonsrc: unexpected delimiter %q", t)
		}
	case string:
		return tree.NewString(t), nil
	case json.Number:
		return decodeNumber(t)
	case bool:
		return tree.NewBool(t), nil
	case nil:
		return tree.Null(), nil
	default:
		return tree.Value{}, fmt.Errorf("jsonsrc: unrecognized token %T", tok)
	}
}

func decodeNumber(n json.Number) (tree.Value, error) {
	if i, err := n.Int64(); err == nil {
		return tree.NewInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return tree.Value{}, fmt.Errorf("jsonsrc: invalid number %q: %w", n, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return tree.Value{}, fmt.Errorf("jsonsrc: number %q has no finite representation", n)
	}
	return tree.NewFloat(f), nil
}

func decodeObject(dec *json.Decoder) (tree.Value, error) {
	obj := tree.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return tree.Value{}, fmt.Errorf("jsonsrc: expected object key, got %T", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}
		val, err := decodeValue(dec, valTok)
		if err != nil {
			return tree.Value{}, err
		}
		obj.SetKey(key, val)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return tree.Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (tree.Value, error) {
	var elems []tree.Value
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}
		v, err := decodeValue(dec, tok)
		if err != nil {
			return tree.Value{}, err
		}
		elems = append(elems, v)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return tree.Value{}, err
	}
	return tree.NewArray(elems...), nil
}
