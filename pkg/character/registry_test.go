package character

import (
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/seed"
	"github.com/shouni/go-storyboard-kit/pkg/store"
)

func newTestRegistry() *Registry {
	return NewRegistry(store.NewCharacterStore(), seed.New(seed.DefaultInitialSeed))
}

func TestDescribeTraits(t *testing.T) {
	tests := []struct {
		name   string
		traits domain.Traits
		want   string
	}{
		{
			name:   "髪色と瞳の色だけの場合",
			traits: domain.Traits{HairColor: "red", EyeColor: "green"},
			want:   "red hair, green eyes",
		},
		{
			name:   "空の場合は空文字",
			traits: domain.Traits{},
			want:   "",
		},
		{
			name:   "髪型だけの場合",
			traits: domain.Traits{HairStyle: "long"},
			want:   "long hair",
		},
		{
			name: "すべての属性が固定順で並ぶこと",
			traits: domain.Traits{
				DistinctiveFeatures: []string{"scar on left cheek"},
				ClothingStyle:       "leather jacket",
				EyeColor:            "blue",
				HairColor:           "black",
				HairStyle:           "short",
				BodyType:            "athletic",
				Ethnicity:           "Japanese",
				Gender:              "woman",
				Age:                 "28",
			},
			want: "28 years old, woman, Japanese, athletic build, short black hair, blue eyes, wearing leather jacket, scar on left cheek",
		},
		{
			name:   "数値でない年齢はそのまま",
			traits: domain.Traits{Age: "elderly"},
			want:   "elderly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeTraits(tt.traits); got != tt.want {
				t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got)
			}
		})
	}
}

func TestBuildConsistencyDescriptor(t *testing.T) {
	got := BuildConsistencyDescriptor("Aria", "silver hair")
	want := "[ARIA]: silver hair, same person, consistent appearance, recognizable features"
	if got != want {
		t.Errorf("期待値 '%s', 実際の値 '%s'", want, got)
	}

	got = BuildConsistencyDescriptor("Aria", "")
	want = "[ARIA]: same person, consistent appearance, recognizable features"
	if got != want {
		t.Errorf("期待値 '%s', 実際の値 '%s'", want, got)
	}
}

func TestRegistry_Create(t *testing.T) {
	t.Run("シードがシード源から払い出されること", func(t *testing.T) {
		r := newTestRegistry()
		c, err := r.Create("Aria", "", domain.Traits{HairColor: "red", EyeColor: "green"})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if c.Seed == nil || *c.Seed != 1083814273 {
			t.Errorf("期待値 1083814273, 実際の値 %v", c.Seed)
		}
		if c.VisualDescription != "red hair, green eyes" {
			t.Errorf("説明文が不正です: %s", c.VisualDescription)
		}
		if c.ID == "" {
			t.Error("IDが割り当てられていません")
		}

		c2, _ := r.Create("Bram", "", domain.Traits{})
		if *c2.Seed != 379334258 {
			t.Errorf("2人目のシードが不正です: %d", *c2.Seed)
		}
	})

	t.Run("名前が空の場合はエラー", func(t *testing.T) {
		r := newTestRegistry()
		if _, err := r.Create("  ", "", domain.Traits{}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput が期待されましたが %v", err)
		}
	})

	t.Run("同じ初期状態なら同じシードが再現されること", func(t *testing.T) {
		a, _ := newTestRegistry().Create("Aria", "", domain.Traits{})
		b, _ := newTestRegistry().Create("Aria", "", domain.Traits{})
		if *a.Seed != *b.Seed {
			t.Errorf("シードが一致しません: %d != %d", *a.Seed, *b.Seed)
		}
	})
}

func TestRegistry_Update(t *testing.T) {
	r := newTestRegistry()
	c, _ := r.Create("Aria", "", domain.Traits{HairColor: "silver", EyeColor: "violet"})

	t.Run("空のパッチでは何も変わらないこと", func(t *testing.T) {
		got, err := r.Update(c.ID, domain.TraitsPatch{})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if got.VisualDescription != c.VisualDescription ||
			got.ConsistencyDescriptor != c.ConsistencyDescriptor ||
			*got.Seed != *c.Seed {
			t.Errorf("派生値が変化しました: %+v", got)
		}
	})

	t.Run("派生値が再計算されIDとシードは維持されること", func(t *testing.T) {
		got, err := r.Update(c.ID, domain.TraitsPatch{HairColor: domain.StringPtr("red")})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if got.VisualDescription != "red hair, violet eyes" {
			t.Errorf("説明文が再計算されていません: %s", got.VisualDescription)
		}
		if !strings.Contains(got.ConsistencyDescriptor, "red hair") {
			t.Errorf("記述子が再計算されていません: %s", got.ConsistencyDescriptor)
		}
		if got.ID != c.ID || *got.Seed != *c.Seed {
			t.Error("IDまたはシードが変わってしまいました")
		}

		stored, _ := r.Get(c.ID)
		if stored.VisualDescription != "red hair, violet eyes" {
			t.Error("更新結果が保存されていません")
		}
	})

	t.Run("存在しないIDはNotFound", func(t *testing.T) {
		_, err := r.Update("missing", domain.TraitsPatch{})
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) || nf.ID != "missing" {
			t.Errorf("NotFoundError が期待されましたが %v", err)
		}
	})
}

func TestRegistry_ConsistencyPromptForScene(t *testing.T) {
	r := newTestRegistry()
	c, _ := r.Create("Aria", "", domain.Traits{HairColor: "silver", ClothingStyle: "red dress"})

	t.Run("シーン情報なしは記述子そのもの", func(t *testing.T) {
		got, err := r.ConsistencyPromptForScene(c.ID, nil)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if got != c.ConsistencyDescriptor {
			t.Errorf("期待値 '%s', 実際の値 '%s'", c.ConsistencyDescriptor, got)
		}
	})

	t.Run("固定順で追記され服装は置き換えられること", func(t *testing.T) {
		got, err := r.ConsistencyPromptForScene(c.ID, &domain.SceneContext{
			Props:            []string{"lantern", "map"},
			ClothingOverride: "raincoat",
			Action:           "running",
			Emotion:          "determined",
		})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		want := "[ARIA]: silver hair, same person, consistent appearance, recognizable features, " +
			"determined expression, running, wearing raincoat, holding lantern, map"
		if got != want {
			t.Errorf("期待値 '%s', 実際の値 '%s'", want, got)
		}

		// 置き換えはその呼び出しだけなのだ
		stored, _ := r.Get(c.ID)
		if stored.Traits.ClothingStyle != "red dress" {
			t.Error("保存されている服装が変更されてしまいました")
		}
	})
}

func TestRegistry_ReferenceSheetPrompt(t *testing.T) {
	r := newTestRegistry()
	c, _ := r.Create("Aria", "", domain.Traits{HairColor: "silver"})

	got, err := r.ReferenceSheetPrompt(c.ID)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	for _, want := range []string{
		c.ConsistencyDescriptor, "front", "side", "three-quarter", "back",
		"neutral", "smiling", "serious", "surprised",
		"turnaround", "model sheet", "white background",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("'%s' が含まれていません: %s", want, got)
		}
	}

	if _, err := r.ReferenceSheetPrompt("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ErrNotFound が期待されましたが %v", err)
	}
}

func TestRegistry_BatchSeeds(t *testing.T) {
	r := newTestRegistry()
	c, _ := r.Create("Aria", "", domain.Traits{})
	base := *c.Seed

	seeds, err := r.BatchSeeds(c.ID, 5)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if len(seeds) != 5 {
		t.Fatalf("期待値 5件, 実際の値 %d件", len(seeds))
	}
	for i, sp := range seeds {
		if sp.Seed != base+int64(i)*10 {
			t.Errorf("%d番目のシードが不正です: %d", i, sp.Seed)
		}
		if sp.ConsistencyPrompt != c.ConsistencyDescriptor {
			t.Errorf("%d番目のプロンプトが不正です: %s", i, sp.ConsistencyPrompt)
		}
	}

	if _, err := r.BatchSeeds("missing", 3); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ErrNotFound が期待されましたが %v", err)
	}
}

func TestRegistry_ListDeleteImport(t *testing.T) {
	r := newTestRegistry()
	b, _ := r.Create("Bram", "", domain.Traits{})
	a, _ := r.Create("Aria", "", domain.Traits{})

	list := r.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("名前順になっていません: %+v", list)
	}

	if _, err := r.AddReferenceImage(a.ID, "ref-1.png"); err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	got, _ := r.AddReferenceImage(a.ID, "ref-2.png")
	if len(got.ReferenceImages) != 2 || got.ReferenceImages[0] != "ref-1.png" {
		t.Errorf("参照画像が追記されていません: %v", got.ReferenceImages)
	}

	if err := r.Delete(b.ID); err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if err := r.Delete(b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ErrNotFound が期待されましたが %v", err)
	}

	imported, err := r.Import(domain.Character{
		ID:                "saved",
		Name:              "Cleo",
		Traits:            domain.Traits{EyeColor: "amber"},
		VisualDescription: "stale",
		Seed:              domain.Int64Ptr(777),
	})
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if imported[0].VisualDescription != "amber eyes" || *imported[0].Seed != 777 {
		t.Errorf("読み込み結果が不正です: %+v", imported[0])
	}
	if _, err := r.Get("saved"); err != nil {
		t.Errorf("読み込んだキャラクターが取得できません: %v", err)
	}
}
