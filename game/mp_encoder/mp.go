// Package mp implements game.Encoder with MessagePack.
package mp

import (
	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/vmihailenco/msgpack/v5"
)

var _ game.Encoder = &MsgPack{}

// MsgPack encodes frames as MessagePack.
type MsgPack struct{}

// MarshalFrame implements game.Encoder.
func (m *MsgPack) MarshalFrame(f game.Frame) ([]byte, error) {
	return msgpack.Marshal(&f)
}

// UnmarshalFrame implements game.Encoder.
func (m *MsgPack) UnmarshalFrame(b []byte) (game.Frame, error) {
	var f game.Frame
	err := msgpack.Unmarshal(b, &f)
	return f, err
}
