package store

import (
	"encoding/json"
	"fmt"
)

// ExportJSON はリポジトリの全値を JSON 配列として書き出します。
// 外部の永続化層（プロジェクトIDをキーにしたKVSなど）へ渡すためのものなのだ。
func ExportJSON[T any](repo Repository[T]) ([]byte, error) {
	data, err := json.MarshalIndent(repo.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ストアのJSON変換に失敗しました: %w", err)
	}
	return data, nil
}

// ImportJSON は JSON 配列を読み込み、key が返すIDでリポジトリに保存します。
// key が空文字を返した値は保存せずにスキップします。
func ImportJSON[T any](repo Repository[T], data []byte, key func(T) string) (int, error) {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return 0, fmt.Errorf("ストアのJSONパースに失敗しました: %w", err)
	}

	n := 0
	for _, v := range values {
		id := key(v)
		if id == "" {
			continue
		}
		repo.Put(id, v)
		n++
	}
	return n, nil
}
