package style

import "github.com/shouni/go-storyboard-kit/pkg/domain"

// プリセットのキー
const (
	PresetHollywoodBlockbuster = "hollywood-blockbuster"
	PresetFilmNoir             = "film-noir"
	PresetAnimeAction          = "anime-action"
	PresetDocumentaryRealism   = "documentary-realism"
	PresetFantasyEpic          = "fantasy-epic"
	PresetCyberpunkSciFi       = "cyberpunk-scifi"
)

// presets は読み取り専用のテンプレートです。外に出すときは必ず Clone するのだ。
var presets = map[string]domain.StyleGuide{
	PresetHollywoodBlockbuster: {
		Name:        "Hollywood Blockbuster",
		Description: "High-budget cinematic look with epic scale and polished color grading",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Wide Shot", "Medium Shot", "Close-Up", "Establishing Shot"},
			CameraAngles: []string{"Eye Level", "Low Angle", "High Angle"},
			Lighting:     "three-point lighting, high contrast",
			ColorPalette: []string{"teal", "orange", "deep blue", "warm gold"},
			Mood:         "epic",
			Atmosphere:   "grand and dynamic",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "blockbuster film still",
			ReferenceArtists: []string{"Roger Deakins", "Janusz Kaminski"},
			ReferenceMovies:  []string{"Inception", "The Dark Knight"},
			Period:           "contemporary",
			Location:         "sprawling city",
			Environment:      "urban",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio21x9,
			Resolution:  domain.Resolution4K,
			Quality:     domain.QualityUltra,
			RenderStyle: domain.RenderCinematic,
		},
	},
	PresetFilmNoir: {
		Name:        "Film Noir",
		Description: "Black-and-white crime drama with hard shadows",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Medium Shot", "Close-Up", "Over-the-Shoulder"},
			CameraAngles: []string{"Low Angle", "Dutch Angle", "High Angle"},
			Lighting:     "low-key lighting, venetian blind shadows",
			ColorPalette: []string{"black", "white", "charcoal gray"},
			Mood:         "mysterious",
			Atmosphere:   "smoky and tense",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "1940s film noir",
			ReferenceArtists: []string{"John Alton", "Gregg Toland"},
			ReferenceMovies:  []string{"The Maltese Falcon", "Double Indemnity"},
			Period:           "1940s",
			Location:         "rain-soaked city streets",
			Environment:      "urban night",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio4x3,
			Resolution:  domain.Resolution1080p,
			Quality:     domain.QualityHigh,
			RenderStyle: domain.RenderCinematic,
		},
	},
	PresetAnimeAction: {
		Name:        "Anime Action",
		Description: "Dynamic Japanese animation style with bold motion",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Close-Up", "Wide Shot", "Extreme Close-Up"},
			CameraAngles: []string{"Low Angle", "Dutch Angle", "Bird's Eye View"},
			Lighting:     "vibrant cel-shaded lighting, rim light",
			ColorPalette: []string{"electric blue", "crimson", "bright yellow", "white"},
			Mood:         "energetic",
			Atmosphere:   "intense and kinetic",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "anime key visual",
			ReferenceArtists: []string{"Makoto Shinkai", "Yoh Yoshinari"},
			ReferenceMovies:  []string{"Akira", "Promare"},
			Period:           "near future",
			Location:         "neon-lit metropolis",
			Environment:      "urban",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio16x9,
			Resolution:  domain.Resolution1080p,
			Quality:     domain.QualityHigh,
			RenderStyle: domain.RenderAnimated,
		},
	},
	PresetDocumentaryRealism: {
		Name:        "Documentary Realism",
		Description: "Natural, observational look as if captured on location",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Medium Shot", "Wide Shot", "Point of View"},
			CameraAngles: []string{"Eye Level", "High Angle"},
			Lighting:     "natural available light",
			ColorPalette: []string{"muted earth tones", "desaturated green", "soft beige"},
			Mood:         "authentic",
			Atmosphere:   "candid and grounded",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "documentary photography",
			ReferenceArtists: []string{"Steve McCurry", "Sebastiao Salgado"},
			ReferenceMovies:  []string{"Free Solo", "Baraka"},
			Period:           "contemporary",
			Location:         "real-world location",
			Environment:      "natural",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio16x9,
			Resolution:  domain.Resolution1080p,
			Quality:     domain.QualityHigh,
			RenderStyle: domain.RenderPhotorealistic,
		},
	},
	PresetFantasyEpic: {
		Name:        "Fantasy Epic",
		Description: "Sweeping high-fantasy worlds with painterly grandeur",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Extreme Wide Shot", "Establishing Shot", "Medium Shot"},
			CameraAngles: []string{"Low Angle", "Bird's Eye View", "Eye Level"},
			Lighting:     "volumetric god rays, golden light",
			ColorPalette: []string{"emerald green", "royal purple", "gold", "misty blue"},
			Mood:         "majestic",
			Atmosphere:   "magical and awe-inspiring",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "epic fantasy painting",
			ReferenceArtists: []string{"Alan Lee", "John Howe"},
			ReferenceMovies:  []string{"The Lord of the Rings", "Willow"},
			Period:           "medieval fantasy",
			Location:         "ancient kingdom",
			Environment:      "mountains and forests",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio21x9,
			Resolution:  domain.Resolution4K,
			Quality:     domain.QualityUltra,
			RenderStyle: domain.RenderArtistic,
		},
	},
	PresetCyberpunkSciFi: {
		Name:        "Cyberpunk Sci-Fi",
		Description: "Neon-drenched dystopian future with high-tech grit",
		Cinematography: domain.Cinematography{
			ShotTypes:    []string{"Wide Shot", "Close-Up", "Over-the-Shoulder"},
			CameraAngles: []string{"Low Angle", "Dutch Angle", "Worm's Eye View"},
			Lighting:     "neon lighting, reflective wet surfaces",
			ColorPalette: []string{"neon pink", "cyan", "deep purple", "acid green"},
			Mood:         "dystopian",
			Atmosphere:   "rainy and oppressive",
		},
		ArtDirection: domain.ArtDirection{
			VisualStyle:      "cyberpunk concept art",
			ReferenceArtists: []string{"Syd Mead", "Moebius"},
			ReferenceMovies:  []string{"Blade Runner", "Ghost in the Shell"},
			Period:           "2080s",
			Location:         "megacity",
			Environment:      "dense vertical urban sprawl",
		},
		TechnicalSpecs: domain.TechnicalSpecs{
			AspectRatio: domain.AspectRatio21x9,
			Resolution:  domain.Resolution4K,
			Quality:     domain.QualityUltra,
			RenderStyle: domain.RenderConceptArt,
		},
	},
}

// ListPresets はプリセットのキーとテンプレートの対応を返します。
// 返り値はコピーなので、変更してもテンプレートには影響しません。
func ListPresets() map[string]domain.StyleGuide {
	out := make(map[string]domain.StyleGuide, len(presets))
	for k, g := range presets {
		c := g.Clone()
		c.ID = k
		out[k] = c
	}
	return out
}

// Preset はキーに対応するプリセットのコピーを返します。
func Preset(key string) (domain.StyleGuide, bool) {
	g, ok := presets[key]
	if !ok {
		return domain.StyleGuide{}, false
	}
	c := g.Clone()
	c.ID = key
	return c, true
}

// PresetKeys はプリセットのキーを固定順で返します。
func PresetKeys() []string {
	return []string{
		PresetHollywoodBlockbuster,
		PresetFilmNoir,
		PresetAnimeAction,
		PresetDocumentaryRealism,
		PresetFantasyEpic,
		PresetCyberpunkSciFi,
	}
}
