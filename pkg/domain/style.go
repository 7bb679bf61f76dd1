package domain

// AspectRatio は生成画像のアスペクト比です。
type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio21x9 AspectRatio = "21:9"
)

// Resolution は生成画像の解像度です。
type Resolution string

const (
	Resolution1080p    Resolution = "1920x1080"
	Resolution4K       Resolution = "3840x2160"
	Resolution720p     Resolution = "1280x720"
	ResolutionVertical Resolution = "1080x1920"
	ResolutionSquare   Resolution = "1024x1024"
)

// Quality は生成品質のプリセットです。
type Quality string

const (
	QualityDraft    Quality = "draft"
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
	QualityUltra    Quality = "ultra"
)

// RenderStyle は修飾語彙とネガティブプロンプトの除外語を切り替える描画スタイルです。
type RenderStyle string

const (
	RenderPhotorealistic RenderStyle = "photorealistic"
	RenderCinematic      RenderStyle = "cinematic"
	RenderArtistic       RenderStyle = "artistic"
	RenderAnimated       RenderStyle = "animated"
	RenderConceptArt     RenderStyle = "concept-art"
)

// Cinematography は撮影・照明に関する指定です。
type Cinematography struct {
	ShotTypes    []string `json:"shot_types"`
	CameraAngles []string `json:"camera_angles"`
	Lighting     string   `json:"lighting"`
	ColorPalette []string `json:"color_palette"`
	Mood         string   `json:"mood"`
	Atmosphere   string   `json:"atmosphere"`
}

// ArtDirection は美術的な方向性の指定です。
type ArtDirection struct {
	VisualStyle      string   `json:"visual_style"`
	ReferenceArtists []string `json:"reference_artists"`
	ReferenceMovies  []string `json:"reference_movies"`
	Period           string   `json:"period"`
	Location         string   `json:"location"`
	Environment      string   `json:"environment"`
}

// TechnicalSpecs は出力の技術仕様です。
type TechnicalSpecs struct {
	AspectRatio AspectRatio `json:"aspect_ratio"`
	Resolution  Resolution  `json:"resolution"`
	Quality     Quality     `json:"quality"`
	RenderStyle RenderStyle `json:"render_style"`
}

// StyleGuide はプロジェクト全体のパネルに一律で適用される演出のまとまりです。
type StyleGuide struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Cinematography Cinematography `json:"cinematography"`
	ArtDirection   ArtDirection   `json:"art_direction"`
	TechnicalSpecs TechnicalSpecs `json:"technical_specs"`
}

// DefaultTechnicalSpecs はスタイルガイドを一から作る場合の既定値です。
func DefaultTechnicalSpecs() TechnicalSpecs {
	return TechnicalSpecs{
		AspectRatio: AspectRatio16x9,
		Resolution:  Resolution1080p,
		Quality:     QualityHigh,
		RenderStyle: RenderCinematic,
	}
}

// CameraSetup はカメラ・レンズ・設定の組です。
type CameraSetup struct {
	Camera   string `json:"camera"`
	Lens     string `json:"lens"`
	Settings string `json:"settings"`
}

// Clone はスライスを共有しないスタイルガイドのコピーを返します。
func (g StyleGuide) Clone() StyleGuide {
	c := g
	c.Cinematography.ShotTypes = cloneStrings(g.Cinematography.ShotTypes)
	c.Cinematography.CameraAngles = cloneStrings(g.Cinematography.CameraAngles)
	c.Cinematography.ColorPalette = cloneStrings(g.Cinematography.ColorPalette)
	c.ArtDirection.ReferenceArtists = cloneStrings(g.ArtDirection.ReferenceArtists)
	c.ArtDirection.ReferenceMovies = cloneStrings(g.ArtDirection.ReferenceMovies)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
