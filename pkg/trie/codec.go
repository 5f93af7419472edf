package trie

import (
	"encoding/binary"
	"fmt"
	"io"

	"acrostic/pkg/letter"
)

// entrySize is the on-disk footprint of one Entry[letter.Set]: a tag byte,
// 26 key bytes, 26 value bytes, one letter byte and an 8-byte offset — laid
// out so every entry is the same width regardless of Kind, which keeps
// random-offset node jumps (Second) a simple index multiply.
const entrySize = 1 + letter.Count + letter.Count + 1 + 8

// EncodeUnary serializes a Trie[letter.Set] (the unary index) to w.
func EncodeUnary(w io.Writer, t Trie[letter.Set]) error {
	buf := make([]byte, entrySize)
	for _, e := range t {
		encodeHeader(buf, e.Kind, e.Letter, e.Second)
		if e.Kind == KindLeaf {
			copy(buf[1:1+letter.Count], e.Key[:])
			copy(buf[1+letter.Count:1+2*letter.Count], e.Value[:])
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// DecodeUnary reads back a Trie[letter.Set] previously written by EncodeUnary.
func DecodeUnary(r io.Reader) (Trie[letter.Set], error) {
	var out Trie[letter.Set]
	buf := make([]byte, entrySize)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		e, err := decodeEntryUnary(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// pairEntrySize is the on-disk footprint of one Entry[[2]letter.Set]: a tag
// byte, 26 key bytes, two 26-byte value sets, one letter byte and an 8-byte
// offset.
const pairEntrySize = 1 + letter.Count + 2*letter.Count + 1 + 8

// EncodeBinary serializes a Trie[[2]letter.Set] (the binary index) to w.
func EncodeBinary(w io.Writer, t Trie[[2]letter.Set]) error {
	buf := make([]byte, pairEntrySize)
	for _, e := range t {
		encodeHeaderPair(buf, e.Kind, e.Letter, e.Second)
		if e.Kind == KindLeaf {
			copy(buf[1:1+letter.Count], e.Key[:])
			copy(buf[1+letter.Count:1+2*letter.Count], e.Value[0][:])
			copy(buf[1+2*letter.Count:1+3*letter.Count], e.Value[1][:])
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBinary reads back a Trie[[2]letter.Set] previously written by EncodeBinary.
func DecodeBinary(r io.Reader) (Trie[[2]letter.Set], error) {
	var out Trie[[2]letter.Set]
	buf := make([]byte, pairEntrySize)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		e, err := decodeEntryPair(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func encodeHeader(buf []byte, kind Kind, l letter.Letter, second int) {
	buf[0] = byte(kind)
	if kind == KindNode {
		buf[1+2*letter.Count] = l.Byte()
		binary.LittleEndian.PutUint64(buf[2+2*letter.Count:], uint64(second))
	}
}

func encodeHeaderPair(buf []byte, kind Kind, l letter.Letter, second int) {
	buf[0] = byte(kind)
	if kind == KindNode {
		buf[1+3*letter.Count] = l.Byte()
		binary.LittleEndian.PutUint64(buf[2+3*letter.Count:], uint64(second))
	}
}

func decodeEntryUnary(buf []byte) (Entry[letter.Set], error) {
	switch Kind(buf[0]) {
	case KindLeaf:
		var key, val letter.Set
		copy(key[:], buf[1:1+letter.Count])
		copy(val[:], buf[1+letter.Count:1+2*letter.Count])
		return Entry[letter.Set]{Kind: KindLeaf, Key: key, Value: val}, nil
	case KindNode:
		l := letter.New(buf[1+2*letter.Count])
		second := binary.LittleEndian.Uint64(buf[2+2*letter.Count:])
		return Entry[letter.Set]{Kind: KindNode, Letter: l, Second: int(second)}, nil
	default:
		return Entry[letter.Set]{}, fmt.Errorf("trie: invalid entry tag %d", buf[0])
	}
}

func decodeEntryPair(buf []byte) (Entry[[2]letter.Set], error) {
	switch Kind(buf[0]) {
	case KindLeaf:
		var key, v0, v1 letter.Set
		copy(key[:], buf[1:1+letter.Count])
		copy(v0[:], buf[1+letter.Count:1+2*letter.Count])
		copy(v1[:], buf[1+2*letter.Count:1+3*letter.Count])
		return Entry[[2]letter.Set]{Kind: KindLeaf, Key: key, Value: [2]letter.Set{v0, v1}}, nil
	case KindNode:
		l := letter.New(buf[1+3*letter.Count])
		second := binary.LittleEndian.Uint64(buf[2+3*letter.Count:])
		return Entry[[2]letter.Set]{Kind: KindNode, Letter: l, Second: int(second)}, nil
	default:
		return Entry[[2]letter.Set]{}, fmt.Errorf("trie: invalid entry tag %d", buf[0])
	}
}
