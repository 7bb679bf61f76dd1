package domain

import (
	"sort"
	"strings"
)

// FindCharacter は IDからキャラクター情報を特定します。
// 完全一致しない場合は小文字化したIDでも探索します。
func (m CharactersMap) FindCharacter(id string) *Character {
	if m == nil {
		return nil
	}
	if char, ok := m[id]; ok {
		res := char
		return &res
	}
	if char, ok := m[strings.ToLower(id)]; ok {
		res := char
		return &res
	}
	return nil
}

// Sorted は名前順（同名の場合はID順）に並べたキャラクターのスライスを返します。
// マップの走査順に依存しない決定論的な結果を得るためのヘルパーなのだ。
func (m CharactersMap) Sorted() []Character {
	chars := make([]Character, 0, len(m))
	for _, c := range m {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool {
		if chars[i].Name != chars[j].Name {
			return chars[i].Name < chars[j].Name
		}
		return chars[i].ID < chars[j].ID
	})
	return chars
}
