package generator

import (
	"context"
	"fmt"
	"sync"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// AssetUploader は参照画像を生成サービス側にアップロードする契約です。
type AssetUploader interface {
	UploadFile(ctx context.Context, fileURI string) (string, error)
}

// AssetCache はキャラクター参照画像のアップロード結果をキャッシュします。
// 同じキャラクターに対する同時アップロードは singleflight で1回にまとめます。
type AssetCache struct {
	uploader    AssetUploader
	mu          sync.RWMutex
	resources   map[string]string // CharacterID -> アップロード済みURI
	uploadGroup singleflight.Group
}

// NewAssetCache は AssetCache を生成します。
func NewAssetCache(uploader AssetUploader) *AssetCache {
	return &AssetCache{
		uploader:  uploader,
		resources: make(map[string]string),
	}
}

// Lookup はアップロード済みのURIを返します。
func (a *AssetCache) Lookup(charID string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	uri, ok := a.resources[charID]
	return uri, ok
}

// Prepare はパネルで使われる全キャラクターの最初の参照画像を並列に事前アップロードします。
func (a *AssetCache) Prepare(ctx context.Context, panels domain.Panels, chars domain.CharactersMap) error {
	eg, egCtx := errgroup.WithContext(ctx)

	for _, id := range panels.UniqueCharacterIDs() {
		char := chars.FindCharacter(id)
		if char == nil || len(char.ReferenceImages) == 0 {
			continue
		}
		charID, ref := char.ID, char.ReferenceImages[0]
		eg.Go(func() error {
			if _, err := a.getOrUpload(egCtx, charID, ref); err != nil {
				return fmt.Errorf("キャラクター %s の参照画像の準備に失敗しました: %w", charID, err)
			}
			return nil
		})
	}

	return eg.Wait()
}

// getOrUpload はキャッシュを確認し、必要な場合だけアップロードを実行します。
func (a *AssetCache) getOrUpload(ctx context.Context, charID, referenceURL string) (string, error) {
	if uri, ok := a.Lookup(charID); ok {
		return uri, nil
	}

	val, err, _ := a.uploadGroup.Do(charID, func() (interface{}, error) {
		// 待機中に他のゴルーチンが完了させている可能性があるので再確認するのだ
		if uri, ok := a.Lookup(charID); ok {
			return uri, nil
		}

		uploaded, err := a.uploader.UploadFile(ctx, referenceURL)
		if err != nil {
			return nil, err
		}

		a.mu.Lock()
		a.resources[charID] = uploaded
		a.mu.Unlock()
		return uploaded, nil
	})
	if err != nil {
		return "", err
	}

	uri, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("singleflight から想定外の型が返りました: %T", val)
	}
	return uri, nil
}
