package prompts

import "github.com/shouni/go-storyboard-kit/pkg/domain"

// styleModifiers は描画スタイルごとの固定の修飾語です。concept-art には修飾語がありません。
var styleModifiers = map[domain.RenderStyle][]string{
	domain.RenderCinematic: {
		"cinematic still",
		"film grain",
		"anamorphic lens flare",
		"dramatic color grading",
		"shallow depth of field",
		"35mm film",
		"movie scene",
	},
	domain.RenderPhotorealistic: {
		"photorealistic",
		"hyperrealistic",
		"realistic skin texture",
		"natural colors",
		"DSLR photo",
		"sharp focus",
		"detailed",
		"RAW photo",
	},
	domain.RenderArtistic: {
		"digital painting",
		"painterly brushstrokes",
		"concept illustration",
		"rich textures",
		"artstation trending",
		"expressive color",
	},
	domain.RenderAnimated: {
		"anime style",
		"cel shading",
		"clean line art",
		"vibrant colors",
		"studio animation",
		"2D illustration",
		"expressive characters",
	},
}

// qualityModifiers は品質プリセットごとの固定の修飾語です。draft には修飾語がありません。
var qualityModifiers = map[domain.Quality][]string{
	domain.QualityUltra: {
		"masterpiece",
		"best quality",
		"ultra detailed",
		"8k resolution",
		"intricate details",
		"award-winning",
	},
	domain.QualityHigh: {
		"high quality",
		"highly detailed",
		"4k resolution",
		"professional",
	},
	domain.QualityStandard: {
		"good quality",
		"detailed",
		"clean",
		"well composed",
	},
}

// TechnicalModifiers は描画スタイルと品質の修飾語を連結して返します。
func TechnicalModifiers(specs domain.TechnicalSpecs) []string {
	style := styleModifiers[specs.RenderStyle]
	quality := qualityModifiers[specs.Quality]
	out := make([]string, 0, len(style)+len(quality))
	out = append(out, style...)
	out = append(out, quality...)
	return out
}
