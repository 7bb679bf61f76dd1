package style

import "github.com/shouni/go-storyboard-kit/pkg/domain"

// cameraSetups は描画スタイルごとの固定のカメラ構成です。
var cameraSetups = map[domain.RenderStyle]domain.CameraSetup{
	domain.RenderCinematic: {
		Camera:   "ARRI Alexa 65",
		Lens:     "anamorphic 40mm",
		Settings: "f/2.8, 24fps, 180-degree shutter",
	},
	domain.RenderPhotorealistic: {
		Camera:   "Canon EOS R5",
		Lens:     "85mm f/1.2",
		Settings: "f/1.8, 1/250s, ISO 100",
	},
	domain.RenderArtistic: {
		Camera:   "Hasselblad X2D",
		Lens:     "45mm",
		Settings: "f/4, soft diffusion filter",
	},
	domain.RenderAnimated: {
		Camera:   "virtual camera",
		Lens:     "35mm equivalent",
		Settings: "orthographic-leaning perspective, clean line framing",
	},
	domain.RenderConceptArt: {
		Camera:   "virtual camera",
		Lens:     "24mm wide",
		Settings: "deep focus, matte painting composition",
	},
}

// CameraSetupFor はスタイルガイドの描画スタイルからカメラ構成を引きます。
// shotType は受け取りますが現状の選択には使いません。
// 未知の描画スタイルは cinematic の構成になるのだ。
func CameraSetupFor(guide domain.StyleGuide, shotType string) domain.CameraSetup {
	if setup, ok := cameraSetups[guide.TechnicalSpecs.RenderStyle]; ok {
		return setup
	}
	return cameraSetups[domain.RenderCinematic]
}
