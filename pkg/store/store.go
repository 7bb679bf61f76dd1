package store

import (
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// Repository はIDをキーに値を保持するストアの契約です。
// レジストリやカタログはこのインターフェースを受け取り、グローバルなキャッシュを持ちません。
type Repository[T any] interface {
	Get(id string) (T, bool)
	Put(id string, v T)
	Delete(id string) bool
	List() []T
	Len() int
}

// CharacterRepository はキャラクターの保存先です。
type CharacterRepository = Repository[domain.Character]

// StyleGuideRepository はスタイルガイドの保存先です。
type StyleGuideRepository = Repository[domain.StyleGuide]

// MemoryStore は go-cache を使ったプロセス内ストアです。
// 呼び出し側が所有し、プロジェクトやテストごとに独立したインスタンスを作ります。
type MemoryStore[T any] struct {
	c     *cache.Cache
	ttl   time.Duration
	clone func(T) T
}

// Option は MemoryStore の設定を変更します。
type Option func(*options)

type options struct {
	ttl     time.Duration
	cleanup time.Duration
}

// WithExpiration は値に有効期限を設定します。既定では期限切れになりません。
func WithExpiration(ttl, cleanupInterval time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
		o.cleanup = cleanupInterval
	}
}

// NewMemoryStore は新しい MemoryStore を生成します。
// clone は出し入れのたびに呼ばれ、内部の値が呼び出し元から変更されるのを防ぎます。
func NewMemoryStore[T any](clone func(T) T, opts ...Option) *MemoryStore[T] {
	o := options{ttl: cache.NoExpiration}
	for _, opt := range opts {
		opt(&o)
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &MemoryStore[T]{
		c:     cache.New(o.ttl, o.cleanup),
		ttl:   o.ttl,
		clone: clone,
	}
}

// NewCharacterStore はキャラクター用の MemoryStore を生成します。
func NewCharacterStore(opts ...Option) *MemoryStore[domain.Character] {
	return NewMemoryStore(domain.Character.Clone, opts...)
}

// NewStyleGuideStore はスタイルガイド用の MemoryStore を生成します。
func NewStyleGuideStore(opts ...Option) *MemoryStore[domain.StyleGuide] {
	return NewMemoryStore(domain.StyleGuide.Clone, opts...)
}

// Get はIDに対応する値のコピーを返します。
func (s *MemoryStore[T]) Get(id string) (T, bool) {
	var zero T
	raw, ok := s.c.Get(id)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return s.clone(v), true
}

// Put は値のコピーを保存します。同じIDの値は上書きされます。
func (s *MemoryStore[T]) Put(id string, v T) {
	s.c.Set(id, s.clone(v), s.ttl)
}

// Delete は値を削除し、削除前に存在していたかを返します。
func (s *MemoryStore[T]) Delete(id string) bool {
	if _, ok := s.c.Get(id); !ok {
		return false
	}
	s.c.Delete(id)
	return true
}

// List はID順に並べた全値のコピーを返します。
func (s *MemoryStore[T]) List() []T {
	items := s.c.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if v, ok := items[k].Object.(T); ok {
			out = append(out, s.clone(v))
		}
	}
	return out
}

// Len は保存されている値の数を返します。
func (s *MemoryStore[T]) Len() int {
	return s.c.ItemCount()
}
