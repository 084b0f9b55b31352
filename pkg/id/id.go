package id

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// Field width limits.
const (
	// MaxTimestamp is the largest representable timestamp, in milliseconds
	// since the Unix epoch (48 bits).
	MaxTimestamp = 1<<48 - 1

	// MaxCounter is the largest value of either 24-bit counter field.
	MaxCounter = 1<<24 - 1
)

// ErrRange reports a constructor argument outside its field width.
var ErrRange = errors.New("id: field value out of range")

// ID is a 128-bit, lexicographically sortable identifier encoded as 16 bytes
// big-endian: [48-bit ms_timestamp][24-bit counter_hi][24-bit counter_lo][32-bit entropy].
type ID [16]byte

// FromFields packs the four fields MSB-first into an ID. It returns ErrRange
// when timestamp exceeds 48 bits or either counter exceeds 24 bits.
func FromFields(timestamp uint64, counterHi, counterLo, entropy uint32) (ID, error) {
	if timestamp > MaxTimestamp {
		return ID{}, fmt.Errorf("%w: timestamp %d", ErrRange, timestamp)
	}
	if counterHi > MaxCounter {
		return ID{}, fmt.Errorf("%w: counter_hi %d", ErrRange, counterHi)
	}
	if counterLo > MaxCounter {
		return ID{}, fmt.Errorf("%w: counter_lo %d", ErrRange, counterLo)
	}
	var i ID
	binary.BigEndian.PutUint16(i[0:2], uint16(timestamp>>32))
	binary.BigEndian.PutUint32(i[2:6], uint32(timestamp))
	i[6] = byte(counterHi >> 16)
	i[7] = byte(counterHi >> 8)
	i[8] = byte(counterHi)
	i[9] = byte(counterLo >> 16)
	i[10] = byte(counterLo >> 8)
	i[11] = byte(counterLo)
	binary.BigEndian.PutUint32(i[12:16], entropy)
	return i, nil
}

// MustFromFields is FromFields that panics on out-of-range input. Intended for
// callers whose arguments are range-checked by construction.
func MustFromFields(timestamp uint64, counterHi, counterLo, entropy uint32) ID {
	i, err := FromFields(timestamp, counterHi, counterLo, entropy)
	if err != nil {
		panic(err)
	}
	return i
}

// FromBytes builds an ID from its 16-byte big-endian representation. Every
// 16-byte pattern is a valid ID; only the length is checked.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 16 {
		return ID{}, fmt.Errorf("%w: %d bytes, want 16", ErrRange, len(b))
	}
	var i ID
	copy(i[:], b)
	return i, nil
}

// Timestamp returns the 48-bit millisecond timestamp field.
func (i ID) Timestamp() uint64 {
	return uint64(binary.BigEndian.Uint16(i[0:2]))<<32 | uint64(binary.BigEndian.Uint32(i[2:6]))
}

// CounterHi returns the 24-bit high counter field.
func (i ID) CounterHi() uint32 {
	return uint32(i[6])<<16 | uint32(i[7])<<8 | uint32(i[8])
}

// CounterLo returns the 24-bit low counter field.
func (i ID) CounterLo() uint32 {
	return uint32(i[9])<<16 | uint32(i[10])<<8 | uint32(i[11])
}

// Entropy returns the 32-bit per-generation randomness field.
func (i ID) Entropy() uint32 {
	return binary.BigEndian.Uint32(i[12:16])
}

// Time returns the timestamp field as a time.Time with millisecond precision.
func (i ID) Time() time.Time {
	return time.UnixMilli(int64(i.Timestamp()))
}

// Bytes returns the raw 16-byte representation.
func (i ID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, i[:])
	return b
}

// String returns the canonical lowercase 25-digit base-36 form.
func (i ID) String() string {
	return string(encodeBase36(i[:]))
}

// Compare returns -1, 0, 1 based on lexical comparison, which is identical to
// unsigned 128-bit magnitude order.
func (i ID) Compare(other ID) int {
	return bytes.Compare(i[:], other[:])
}

// IsZero reports whether the ID is the all-zero value.
func (i ID) IsZero() bool {
	return i == ID{}
}

// MarshalText implements encoding.TextMarshaler; IDs embedded in JSON or YAML
// documents serialize as the 25-character string.
func (i ID) MarshalText() ([]byte, error) {
	return encodeBase36(i[:]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (i ID) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts the raw
// 16-byte form or the UTF-8 bytes of the 25-character textual form.
func (i *ID) UnmarshalBinary(b []byte) error {
	switch len(b) {
	case 16:
		copy(i[:], b)
		return nil
	case encodedLen:
		return i.UnmarshalText(b)
	default:
		return fmt.Errorf("%w: %d bytes, want 16 or %d", ErrParse, len(b), encodedLen)
	}
}

// Value implements database/sql/driver.Valuer, storing the canonical string.
func (i ID) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements database/sql.Scanner, accepting the textual form as a
// string and either form as a byte slice.
func (i *ID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalBinary(v)
	default:
		return fmt.Errorf("id: cannot scan %T into ID", src)
	}
}
