// Package hashid converts internal numeric ids to the opaque strings used in
// URLs and JSON payloads.
package hashid

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

const minLength = 12

var ErrInvalid = errors.New("invalid id")

type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id uint64) string {
	e, _ := c.h.EncodeInt64([]int64{int64(id)})
	return e
}

// Decode reverses Encode. Strings that were not produced by this codec
// (other salt, tampered, several numbers) return ErrInvalid.
func (c *Codec) Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrInvalid
	}
	nums, err := c.h.DecodeInt64WithError(s)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, ErrInvalid
	}
	// hashids accepts some non-canonical inputs; round trip to reject them.
	if c.Encode(uint64(nums[0])) != s {
		return 0, ErrInvalid
	}
	return uint64(nums[0]), nil
}
