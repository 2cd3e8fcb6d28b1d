package engine

import (
	crand "crypto/rand"
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/wippyai/randcore/errors"
)

// prepareSeed validates and normalizes explicit seed words for an engine
// with the given native word count. On success the returned slice has
// exactly native words and is safe for the caller to retain.
func prepareSeed(name string, words []uint64, native int, o Options) ([]uint64, error) {
	if len(words) == 0 {
		return nil, errors.InvalidSeed(name, "no seed words supplied")
	}
	if allZero(words) && !o.AllowZero {
		return nil, errors.InvalidSeed(name, "seed words must not be all zero")
	}
	if len(words) != native && !o.AllowResize {
		return nil, errors.SeedLength(name, len(words), native)
	}

	out := make([]uint64, native)
	switch {
	case len(words) >= native:
		copy(out, words)
	default:
		expandSeed(out, words)
	}
	return out, nil
}

// prepareSeedBytes converts a byte seed to words. The byte slice must be
// exactly 8*native bytes unless resizing is allowed, in which case it is
// zero-padded to a word boundary before the word-level rules apply.
func prepareSeedBytes(name string, b []byte, native int, o Options) ([]uint64, error) {
	if len(b) == 0 {
		return nil, errors.InvalidSeed(name, "no seed bytes supplied")
	}
	if len(b) != native*8 && !o.AllowResize {
		return nil, errors.SeedLength(name, len(b), native*8)
	}

	words := make([]uint64, (len(b)+7)/8)
	for i := range words {
		var chunk [8]byte
		copy(chunk[:], b[i*8:])
		words[i] = binary.LittleEndian.Uint64(chunk[:])
	}
	return prepareSeed(name, words, native, o)
}

// expandSeed fills dst from fewer seed words than the engine's native
// width. Every input word is absorbed into a splitmix64 stream, then the
// stream is squeezed for the missing words. Zero-padding is never used:
// a short seed still produces a fully mixed initial state.
func expandSeed(dst []uint64, words []uint64) {
	var sm splitmixState
	for _, w := range words {
		sm ^= splitmixState(w)
		sm.next()
	}
	for i := range dst {
		dst[i] = sm.next()
	}
}

// prepareSeedVar validates seed words for engines whose array-keyed
// initializers accept any number of words natively.
func prepareSeedVar(name string, words []uint64, o Options) error {
	if len(words) == 0 {
		return errors.InvalidSeed(name, "no seed words supplied")
	}
	if allZero(words) && !o.AllowZero {
		return errors.InvalidSeed(name, "seed words must not be all zero")
	}
	return nil
}

// prepareSeedVarBytes converts a byte seed of any length to zero-padded
// little-endian words for an array-keyed engine.
func prepareSeedVarBytes(name string, b []byte, o Options) ([]uint64, error) {
	if len(b) == 0 {
		return nil, errors.InvalidSeed(name, "no seed bytes supplied")
	}
	words := make([]uint64, (len(b)+7)/8)
	for i := range words {
		var chunk [8]byte
		copy(chunk[:], b[i*8:])
		words[i] = binary.LittleEndian.Uint64(chunk[:])
	}
	if err := prepareSeedVar(name, words, o); err != nil {
		return nil, err
	}
	return words, nil
}

func allZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// entropyWords reads n words from the host's cryptographically secure
// entropy source.
func entropyWords(name string, n int) ([]uint64, error) {
	buf := make([]byte, n*8)
	if _, err := crand.Read(buf); err != nil {
		return nil, errors.Entropy(name, err)
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return words, nil
}

// reseedEntropy is the shared Reseed implementation: it feeds fresh
// entropy through the engine's deterministic seeding path. An all-zero
// entropy read is astronomically unlikely but still permitted explicitly
// so the deterministic path cannot reject it.
func reseedEntropy(e Engine, name string, native int) error {
	words, err := entropyWords(name, native)
	if err != nil {
		Logger().Warn("entropy read failed during reseed",
			zap.String("engine", name),
			zap.Error(err))
		return err
	}
	Logger().Debug("reseeded from entropy",
		zap.String("engine", name),
		zap.Int("words", native))
	return e.Seed(words, AllowZeroSeed())
}
