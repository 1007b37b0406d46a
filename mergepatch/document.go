package mergepatch

import (
	"github.com/variantform/variantform/vferrors"
)

// MergeJSON parses base and override as JSON, merges override into base and
// returns the result rendered by MarshalJSON.
//
// The override must be an object (*vferrors.ShapeError matching
// vferrors.ErrOverrideNotObject otherwise). A non-object base is replaced by
// the merge result, as RFC 7396 prescribes.
func MergeJSON(base, override []byte) ([]byte, error) {
	baseVal, err := ParseJSON(base)
	if err != nil {
		return nil, withOperand(err, vferrors.OperandBase)
	}
	patch, err := ParseJSON(override)
	if err != nil {
		return nil, withOperand(err, vferrors.OperandOverride)
	}
	if _, ok := patch.(*Object); !ok {
		return nil, &vferrors.ShapeError{Format: "json", Operand: vferrors.OperandOverride, Actual: patch.Kind().String()}
	}
	return MarshalJSON(Apply(baseVal, patch))
}

// MergeYAML parses base and override as YAML, merges override into base and
// returns the result rendered by MarshalYAML.
//
// Both documents must be mappings (*vferrors.ShapeError matching
// vferrors.ErrNotAMapping otherwise).
func MergeYAML(base, override []byte) ([]byte, error) {
	baseVal, err := ParseYAML(base)
	if err != nil {
		return nil, withOperand(err, vferrors.OperandBase)
	}
	if _, ok := baseVal.(*Object); !ok {
		return nil, &vferrors.ShapeError{Format: "yaml", Operand: vferrors.OperandBase, Actual: baseVal.Kind().String()}
	}
	patch, err := ParseYAML(override)
	if err != nil {
		return nil, withOperand(err, vferrors.OperandOverride)
	}
	if _, ok := patch.(*Object); !ok {
		return nil, &vferrors.ShapeError{Format: "yaml", Operand: vferrors.OperandOverride, Actual: patch.Kind().String()}
	}
	return MarshalYAML(Apply(baseVal, patch))
}

// withOperand labels a parse error with the operand it came from.
func withOperand(err error, operand string) error {
	if pe, ok := err.(*vferrors.ParseError); ok && pe.Message == "" {
		pe.Message = "invalid " + operand
	}
	return err
}
