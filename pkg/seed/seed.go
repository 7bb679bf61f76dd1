package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

const (
	// DefaultInitialSeed は Source を明示的に初期化しない場合の初期状態です。
	DefaultInitialSeed int64 = 42

	multiplier int64 = 1664525
	increment  int64 = 1013904223
	modulus    int64 = 2147483647
)

// Source は再現性のあるシード値を払い出す 31bit の線形合同法ジェネレーターです。
// 同じ初期状態から同じ回数だけ Next を呼べば、必ず同じ系列が得られます。
// 暗号論的な乱数ではありません。セッションをまたいだ再現性のためのものなのだ。
type Source struct {
	mu    sync.Mutex
	state int64
}

// New は指定された初期状態で Source を生成します。
func New(initial int64) *Source {
	return &Source{state: normalize(initial)}
}

// Next は状態を1つ進め、新しい状態を返します。
// state = (state * 1664525 + 1013904223) mod 2147483647
func (s *Source) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = normalize(s.state*multiplier + increment)
	return s.state
}

// State は現在の内部状態を返します。
func (s *Source) State() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Clone は同じ状態を持つ独立した Source を返します。
func (s *Source) Clone() *Source {
	return New(s.State())
}

// normalize は値を [0, modulus) に収めます。
func normalize(v int64) int64 {
	v %= modulus
	if v < 0 {
		v += modulus
	}
	return v
}

// FromString は文字列から決定論的なシード値を生成します。
// これにより、明示的なシード指定がない場合でも入力が同じなら同じシードが使われます。
func FromString(s string) int64 {
	hash := sha256.Sum256([]byte(s))
	// ハッシュの最初の4バイトを使い、最上位ビットを落として正の数にするのだ
	return int64(binary.BigEndian.Uint32(hash[:4]) & 0x7FFFFFFF)
}
