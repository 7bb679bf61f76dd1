package domain

import "sort"

// UniqueCharacterIDs はパネルのスライスから重複しないキャラクターIDを抽出します。
func (ps Panels) UniqueCharacterIDs() []string {
	set := make(map[string]struct{})
	for _, panel := range ps {
		for _, id := range panel.CharacterIDs {
			if id != "" {
				set[id] = struct{}{}
			}
		}
	}

	uniqueIDs := make([]string, 0, len(set))
	for id := range set {
		uniqueIDs = append(uniqueIDs, id)
	}
	sort.Strings(uniqueIDs)

	return uniqueIDs
}

// HasContent はパネルに合成可能な情報が含まれているか判定します。
func (p Panel) HasContent() bool {
	return p.VisualPrompt != "" || p.Description != "" || p.ReferenceURL != ""
}
