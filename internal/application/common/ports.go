package common

import "github.com/andrescamacho/eveindustry-go/internal/domain/record"

// RecordCodec converts named record trees to and from their text form
type RecordCodec interface {
	Encode(name string, obj *record.Object) ([]byte, error)
	Decode(data []byte) (string, *record.Object, error)
}
