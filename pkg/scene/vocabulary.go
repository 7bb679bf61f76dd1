package scene

import "strings"

// 以下の列挙は外部との互換性のため、文字列を変更してはいけません。

// ShotTypes はショットタイプの一覧です。
var ShotTypes = []string{
	"Extreme Wide Shot",
	"Wide Shot",
	"Medium Shot",
	"Medium Close-Up",
	"Close-Up",
	"Extreme Close-Up",
	"Over-the-Shoulder",
	"Two-Shot",
	"Point of View",
	"Establishing Shot",
}

// CameraAngles はカメラアングルの一覧です。
var CameraAngles = []string{
	"Eye Level",
	"High Angle",
	"Low Angle",
	"Bird's Eye View",
	"Dutch Angle",
	"Worm's Eye View",
}

// CameraMovements はカメラワークの一覧です。
var CameraMovements = []string{
	"Static",
	"Pan",
	"Tilt",
	"Dolly",
	"Tracking",
	"Crane",
	"Handheld",
	"Zoom",
}

// LightingStyles は照明スタイルの一覧です。
var LightingStyles = []string{
	"Natural Light",
	"Golden Hour",
	"Blue Hour",
	"High Key",
	"Low Key",
	"Chiaroscuro",
	"Rim Lighting",
	"Silhouette",
	"Neon",
	"Volumetric",
}

// CompositionRules は構図ルールの一覧です。
var CompositionRules = []string{
	"Rule of Thirds",
	"Golden Ratio",
	"Leading Lines",
	"Symmetry",
	"Frame within Frame",
	"Negative Space",
	"Depth Layers",
	"Centered",
}

// StaticMovement はモーションブラーを付けないカメラワークです。
const StaticMovement = "Static"

// IsKnown は値が列挙に含まれるかを大文字小文字を区別せずに判定します。
// パネルの値は列挙に縛られないため、検証ではなく警告に使うのだ。
func IsKnown(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
