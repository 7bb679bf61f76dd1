package style

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/store"
)

func newGuide(name string, palette []string, specs domain.TechnicalSpecs) domain.StyleGuide {
	return domain.StyleGuide{
		Name: name,
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Wide Shot", "Close-Up"},
			CameraAngles: []string{"Eye Level"},
			Lighting:     name + " light",
			ColorPalette: palette,
			Mood:         name + " mood",
		},
		ArtDirection:   domain.ArtDirection{VisualStyle: name + " style"},
		TechnicalSpecs: specs,
	}
}

func TestListPresets(t *testing.T) {
	ps := ListPresets()
	if len(ps) != 6 {
		t.Fatalf("期待値 6件, 実際の値 %d件", len(ps))
	}
	for _, key := range PresetKeys() {
		g, ok := ps[key]
		if !ok {
			t.Errorf("プリセット '%s' がありません", key)
			continue
		}
		if g.Name == "" || g.Cinematography.Lighting == "" || len(g.Cinematography.ColorPalette) == 0 ||
			g.ArtDirection.VisualStyle == "" || g.TechnicalSpecs.RenderStyle == "" {
			t.Errorf("プリセット '%s' に未設定の項目があります: %+v", key, g)
		}
	}

	// 返り値を変更してもテンプレートは変わらないのだ
	ps[PresetFilmNoir].Cinematography.ColorPalette[0] = "pink"
	again, _ := Preset(PresetFilmNoir)
	if again.Cinematography.ColorPalette[0] != "black" {
		t.Error("プリセットのテンプレートが変更されてしまいました")
	}
}

func TestCatalog_Create(t *testing.T) {
	c := NewCatalog(store.NewStyleGuideStore())

	t.Run("プリセットから作成", func(t *testing.T) {
		g, err := c.Create("My Noir", "desc", PresetFilmNoir)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if g.ID == "" || g.ID == PresetFilmNoir || g.Name != "My Noir" || g.Description != "desc" {
			t.Errorf("ID・名前・説明が新しく設定されていません: %+v", g)
		}
		if g.Cinematography.Lighting != presets[PresetFilmNoir].Cinematography.Lighting {
			t.Error("プリセットの値が複製されていません")
		}
		if _, err := c.Get(g.ID); err != nil {
			t.Errorf("作成したガイドが保存されていません: %v", err)
		}
	})

	t.Run("キー未指定なら既定の技術仕様", func(t *testing.T) {
		g, err := c.Create("Blank", "", "")
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		want := domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio16x9,
			Resolution:  domain.Resolution1080p,
			Quality:     domain.QualityHigh,
			RenderStyle: domain.RenderCinematic,
		}
		if g.TechnicalSpecs != want {
			t.Errorf("期待値 %+v, 実際の値 %+v", want, g.TechnicalSpecs)
		}
		if g.Cinematography.Lighting != "" || len(g.Cinematography.ShotTypes) != 0 {
			t.Errorf("空のガイドになっていません: %+v", g)
		}
	})

	t.Run("未知のキーでも既定の技術仕様を持つ空のガイドになること", func(t *testing.T) {
		g, err := c.Create("x", "", "no-such-preset")
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if g.TechnicalSpecs != domain.DefaultTechnicalSpecs() {
			t.Errorf("期待値 %+v, 実際の値 %+v", domain.DefaultTechnicalSpecs(), g.TechnicalSpecs)
		}
		if g.Name != "x" || g.Cinematography.Lighting != "" || g.ArtDirection.VisualStyle != "" {
			t.Errorf("空のガイドになっていません: %+v", g)
		}
		if _, err := c.Get(g.ID); err != nil {
			t.Errorf("作成したガイドが保存されていません: %v", err)
		}
	})
}

func TestCatalog_UpdateDelete(t *testing.T) {
	c := NewCatalog(nil)
	g, _ := c.Create("A", "", "")

	updated, err := c.Update(g.ID, domain.StyleGuide{ID: "ignored", Name: "B"})
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if updated.ID != g.ID || updated.Name != "B" {
		t.Errorf("更新結果が不正です: %+v", updated)
	}

	if err := c.Delete(g.ID); err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if _, err := c.Update(g.ID, domain.StyleGuide{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ErrNotFound が期待されましたが %v", err)
	}
}

func TestCatalog_Blend(t *testing.T) {
	specsA := domain.TechnicalSpecs{AspectRatio: domain.AspectRatio21x9, Resolution: domain.Resolution4K, Quality: domain.QualityUltra, RenderStyle: domain.RenderCinematic}
	specsB := domain.TechnicalSpecs{AspectRatio: domain.AspectRatio1x1, Resolution: domain.ResolutionSquare, Quality: domain.QualityDraft, RenderStyle: domain.RenderAnimated}
	a := newGuide("A", []string{"a1", "a2", "a3", "a4"}, specsA)
	b := newGuide("B", []string{"b1", "b2", "b3", "b4"}, specsB)
	b.Cinematography.ShotTypes = []string{"Close-Up", "Two-Shot"}

	c := NewCatalog(nil)

	t.Run("比率0.7ではAの技術仕様", func(t *testing.T) {
		g, err := c.Blend(a, b, 0.7)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if g.TechnicalSpecs != specsA {
			t.Errorf("Aの技術仕様が期待されましたが %+v", g.TechnicalSpecs)
		}
		if g.ArtDirection.VisualStyle != "A style" {
			t.Errorf("Aの美術設定が期待されましたが %+v", g.ArtDirection)
		}
		// floor(4*0.7)=2, floor(4*0.3)=1
		want := []string{"a1", "a2", "b1"}
		if !reflect.DeepEqual(g.Cinematography.ColorPalette, want) {
			t.Errorf("期待値 %v, 実際の値 %v", want, g.Cinematography.ColorPalette)
		}
	})

	t.Run("比率0.3ではBの技術仕様", func(t *testing.T) {
		g, _ := c.Blend(a, b, 0.3)
		if g.TechnicalSpecs != specsB {
			t.Errorf("Bの技術仕様が期待されましたが %+v", g.TechnicalSpecs)
		}
	})

	t.Run("比率0.5ではBの技術仕様", func(t *testing.T) {
		g, _ := c.Blend(a, b, DefaultBlendRatio)
		if g.TechnicalSpecs != specsB {
			t.Errorf("Bの技術仕様が期待されましたが %+v", g.TechnicalSpecs)
		}
		want := []string{"a1", "a2", "b1", "b2"}
		if !reflect.DeepEqual(g.Cinematography.ColorPalette, want) {
			t.Errorf("期待値 %v, 実際の値 %v", want, g.Cinematography.ColorPalette)
		}
	})

	t.Run("文字列は接続語で連結され、和集合は順序を保つこと", func(t *testing.T) {
		g, _ := c.Blend(a, b, 0.5)
		if g.Cinematography.Lighting != "A light mixed with B light" {
			t.Errorf("照明: %s", g.Cinematography.Lighting)
		}
		if g.Cinematography.Mood != "A mood meets B mood" {
			t.Errorf("ムード: %s", g.Cinematography.Mood)
		}
		if g.Cinematography.Atmosphere != "" {
			t.Errorf("雰囲気は空のはずです: %s", g.Cinematography.Atmosphere)
		}
		wantShots := []string{"Wide Shot", "Close-Up", "Two-Shot"}
		if !reflect.DeepEqual(g.Cinematography.ShotTypes, wantShots) {
			t.Errorf("期待値 %v, 実際の値 %v", wantShots, g.Cinematography.ShotTypes)
		}
		if _, err := c.Get(g.ID); err != nil {
			t.Errorf("ブレンド結果が保存されていません: %v", err)
		}
	})

	t.Run("比率は0から1に収められること", func(t *testing.T) {
		g, _ := c.Blend(a, b, 3)
		if g.TechnicalSpecs != specsA || len(g.Cinematography.ColorPalette) != 4 {
			t.Errorf("比率1として扱われていません: %+v", g)
		}
		g, _ = c.Blend(a, b, -1)
		if g.TechnicalSpecs != specsB || g.Cinematography.ColorPalette[0] != "b1" {
			t.Errorf("比率0として扱われていません: %+v", g)
		}
	})

	t.Run("片方が空なら残りをそのまま使うこと", func(t *testing.T) {
		empty := domain.StyleGuide{}
		g, _ := c.Blend(a, empty, 0.5)
		if g.Cinematography.Lighting != "A light" {
			t.Errorf("照明: %s", g.Cinematography.Lighting)
		}
	})
}

func TestCameraSetupFor(t *testing.T) {
	tests := []struct {
		style domain.RenderStyle
		want  string
	}{
		{domain.RenderCinematic, "ARRI Alexa 65"},
		{domain.RenderPhotorealistic, "Canon EOS R5"},
		{domain.RenderArtistic, "Hasselblad X2D"},
		{domain.RenderConceptArt, "virtual camera"},
		{"unknown", "ARRI Alexa 65"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			g := domain.StyleGuide{TechnicalSpecs: domain.TechnicalSpecs{RenderStyle: tt.style}}
			if got := CameraSetupFor(g, "Close-Up"); got.Camera != tt.want {
				t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got.Camera)
			}
		})
	}

	// ショットタイプは選択に影響しないのだ
	g := domain.StyleGuide{TechnicalSpecs: domain.TechnicalSpecs{RenderStyle: domain.RenderArtistic}}
	if CameraSetupFor(g, "Wide Shot") != CameraSetupFor(g, "Extreme Close-Up") {
		t.Error("ショットタイプによって結果が変わりました")
	}
}
