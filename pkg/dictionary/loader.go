package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"acrostic/pkg/letter"
)

// recordHeaderSize is the fixed portion of a packed Word record: one
// length-prefix byte, 26 multiset count bytes, 8 frequency bytes.
const recordHeaderSize = 1 + letterCount + 8

const letterCount = 26

// Dictionary is the loaded, in-memory word list, built once per process
// and shared read-only by the index builder, the solver's materializer,
// and the prefix accelerator.
type Dictionary struct {
	Words []Word
}

// LoadSourceText reads a raw "word<TAB>frequency" word-frequency corpus
// (one entry per line, most frequent first), folds and filters it the way
// the offline index build expects: banned words and empty multisets
// dropped, capped at maxWords entries. The size>5 filter used to build the
// trie index is applied later, by index.candidates.
func LoadSourceText(r io.Reader, maxWords int) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []Word
	for scanner.Scan() {
		if maxWords > 0 && len(words) >= maxWords {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		spelling := strings.ToLower(strings.TrimSpace(parts[0]))
		if spelling == "" || len(spelling) > MaxWordLength {
			continue
		}
		if IsBanned(spelling) {
			continue
		}
		freq, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			continue
		}
		w := NewWord(spelling, freq)
		if w.Multiset.Count() == 0 {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: reading source text: %w", err)
	}
	log.Debugf("dictionary: loaded %d words from source text", len(words))
	return &Dictionary{Words: words}, nil
}

// Save persists the dictionary as a packed array of Word records to w.
func (d *Dictionary) Save(w io.Writer) error {
	for _, word := range d.Words {
		if err := writeRecord(w, word); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, word Word) error {
	if len(word.Spelling) > MaxWordLength {
		return fmt.Errorf("dictionary: word %q exceeds max length %d", word.Spelling, MaxWordLength)
	}
	buf := make([]byte, recordHeaderSize+len(word.Spelling))
	buf[0] = byte(len(word.Spelling))
	copy(buf[1:1+letterCount], word.Multiset[:])
	binary.LittleEndian.PutUint64(buf[1+letterCount:recordHeaderSize], word.Frequency)
	copy(buf[recordHeaderSize:], word.Spelling)
	_, err := w.Write(buf)
	return err
}

// Load reads back a dictionary previously written by Save.
func Load(r io.Reader) (*Dictionary, error) {
	br := bufio.NewReader(r)
	var words []Word
	header := make([]byte, recordHeaderSize)
	for {
		_, err := io.ReadFull(br, header)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary: reading record header: %w", err)
		}
		length := int(header[0])
		spellingBuf := make([]byte, length)
		if _, err := io.ReadFull(br, spellingBuf); err != nil {
			return nil, fmt.Errorf("dictionary: reading spelling: %w", err)
		}
		var multiset letter.Set
		copy(multiset[:], header[1:1+letterCount])
		freq := binary.LittleEndian.Uint64(header[1+letterCount : recordHeaderSize])

		spelling := string(spellingBuf)
		word := NewWord(spelling, freq)
		if word.Multiset != multiset {
			return nil, fmt.Errorf("dictionary: record for %q fails multiset sanity check", spelling)
		}
		words = append(words, word)
	}
	return &Dictionary{Words: words}, nil
}

// LoadFile opens path and loads a packed dictionary from it.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
