// Package optab provides interchange encodings of the CIL opcode table so
// external tools can consume it without linking pkg/cil: TOML for
// human-readable dumps and canonical CBOR for compact transport.
package optab

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/sigil/pkg/cil"
)

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("optab: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Record is one opcode descriptor flattened to plain strings and numbers.
type Record struct {
	Name        string `toml:"name" cbor:"name"`
	Code        uint16 `toml:"code" cbor:"code"`
	Size        int    `toml:"size" cbor:"size"`
	OperandType string `toml:"operand-type" cbor:"operand_type"`
	FlowControl string `toml:"flow-control" cbor:"flow_control"`
	Push        string `toml:"push" cbor:"push"`
	Pop         string `toml:"pop" cbor:"pop"`
}

// Table is a snapshot of the opcode table.
type Table struct {
	Count   int      `toml:"count" cbor:"count"`
	OpCodes []Record `toml:"opcode" cbor:"opcodes"`
}

// FromOpCodes flattens descriptors into a Table, preserving order.
func FromOpCodes(ops []cil.OpCode) *Table {
	t := &Table{Count: len(ops), OpCodes: make([]Record, 0, len(ops))}
	for _, op := range ops {
		t.OpCodes = append(t.OpCodes, Record{
			Name:        op.Name,
			Code:        uint16(op.Code),
			Size:        op.Size(),
			OperandType: op.OperandType.String(),
			FlowControl: op.FlowControl.String(),
			Push:        op.Push.String(),
			Pop:         op.Pop.String(),
		})
	}
	return t
}

// Snapshot returns the full built-in opcode table, ordered by code.
func Snapshot() *Table {
	return FromOpCodes(cil.AllOpCodes())
}

// MarshalTOML encodes a table as TOML.
func MarshalTOML(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, fmt.Errorf("optab: encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalTOML decodes a table from TOML bytes.
func UnmarshalTOML(data []byte) (*Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("optab: unmarshal toml: %w", err)
	}
	return &t, nil
}

// MarshalCBOR encodes a table as canonical CBOR.
func MarshalCBOR(t *Table) ([]byte, error) {
	return cborEncMode.Marshal(t)
}

// UnmarshalCBOR decodes a table from CBOR bytes.
func UnmarshalCBOR(data []byte) (*Table, error) {
	var t Table
	if err := cbor.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("optab: unmarshal cbor: %w", err)
	}
	return &t, nil
}
