package service

import (
	"encoding/json"

	"github.com/seha22/studienhouse/internal/model"
)

// DeepMerge layers a partial document onto a structurally complete base.
// Objects merge key by key, arrays replace wholesale, scalars override,
// and keys the override omits keep the base value. Neither argument is
// mutated.
func DeepMerge(base, override map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base))
	for k, v := range base {
		result[k] = v
	}

	for k, ov := range override {
		bv, exists := result[k]
		if !exists {
			result[k] = ov
			continue
		}
		result[k] = mergeValue(bv, ov)
	}

	return result
}

func mergeValue(base, override interface{}) interface{} {
	if override == nil {
		return base
	}

	if _, isArr := base.([]interface{}); isArr {
		// Arrays never merge element-wise: an override array replaces
		// the base array, anything else keeps the base.
		if arr, ok := override.([]interface{}); ok {
			return arr
		}
		return base
	}

	bm, baseIsObj := base.(map[string]interface{})
	om, overrideIsObj := override.(map[string]interface{})
	if baseIsObj && overrideIsObj {
		return DeepMerge(bm, om)
	}

	return override
}

// MergeLandingContent applies a raw partial payload onto a typed base
// document. The base is always complete, so the result contains every
// field of the canonical schema.
func MergeLandingContent(base model.LandingContent, partial json.RawMessage) (model.LandingContent, error) {
	if len(partial) == 0 {
		return base, nil
	}

	var override map[string]interface{}
	if err := json.Unmarshal(partial, &override); err != nil {
		return base, err
	}
	if override == nil {
		return base, nil
	}

	baseBytes, err := json.Marshal(base)
	if err != nil {
		return base, err
	}
	var baseMap map[string]interface{}
	if err := json.Unmarshal(baseBytes, &baseMap); err != nil {
		return base, err
	}

	merged := DeepMerge(baseMap, override)

	mergedBytes, err := json.Marshal(merged)
	if err != nil {
		return base, err
	}
	var out model.LandingContent
	if err := json.Unmarshal(mergedBytes, &out); err != nil {
		return base, err
	}
	return out, nil
}
