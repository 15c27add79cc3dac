package main

import (
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/types"
)

// toJSONValue converts a finalized node.Value into plain Go data
// (map[string]any, []any, string, int64, float64, bool, nil) suitable for
// encoding/json, used by both the dump and get commands' --json output.
func toJSONValue(v node.Value) (any, error) {
	switch v.Kind() {
	case types.LogicalObject:
		obj := v.Object()
		out := make(map[string]any, obj.Len())
		var err error
		obj.Each(func(key string, child node.Value) bool {
			var cv any
			if cv, err = toJSONValue(child); err != nil {
				return false
			}
			out[key] = cv
			return true
		})
		return out, err
	case types.LogicalArray:
		arr := v.Array()
		out := make([]any, arr.Len())
		var err error
		arr.Each(func(i int, child node.Value) bool {
			out[i], err = toJSONValue(child)
			return err == nil
		})
		return out, err
	case types.LogicalString:
		return v.String(), nil
	case types.LogicalInteger:
		return v.Int64(), nil
	case types.LogicalDecimal:
		return v.Float64(), nil
	case types.LogicalBoolean:
		return v.Bool(), nil
	default:
		return nil, nil
	}
}
