package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound はキャラクターやスタイルガイドが存在しないことを示します。
	ErrNotFound = errors.New("対象が見つかりません")
	// ErrEmptyPrompt は合成の元になる情報が何もないことを示します。
	// 課金される生成バックエンドに空文字を渡さないためのエラーなのだ。
	ErrEmptyPrompt = errors.New("プロンプトの元になる visual prompt と description が両方とも空です")
	// ErrUnsupportedModel はモデル別最適化テーブルに該当エントリがないことを示します。
	// 呼び出し側は最適化前のプロンプトで処理を続けてください。
	ErrUnsupportedModel = errors.New("サポートされていないモデルです")
	// ErrInvalidInput は入力値が不正であることを示します。
	ErrInvalidInput = errors.New("入力値が不正です")
)

// NotFoundError は見つからなかった対象の種類とIDを保持します。
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' が見つかりません", e.Kind, e.ID)
}

// Unwrap により errors.Is(err, ErrNotFound) が成立します。
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// UnsupportedModelError は最適化できなかったモデル名を保持します。
type UnsupportedModelError struct {
	Model string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("モデル '%s' の最適化設定がありません", e.Model)
}

func (e *UnsupportedModelError) Unwrap() error { return ErrUnsupportedModel }
