package parser

import (
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
)

// resolveBaseURL はスクリプトの場所から参照画像を解決するためのベースを導き出すのだ。
// gs:// は公開URLに、http(s) はディレクトリ階層までのURLに、スキームの無いパスはローカルのディレクトリに変換します。
func resolveBaseURL(scriptURL string) string {
	if scriptURL == "" {
		return ""
	}

	u, err := url.Parse(scriptURL)
	if err != nil {
		slog.Warn("scriptURLの解析に失敗しました", "url", scriptURL, "error", err)
		return ""
	}

	dir := path.Dir(u.Path)
	if dir == "." || dir == "/" {
		dir = ""
	}

	switch u.Scheme {
	case "gs":
		baseURL := &url.URL{
			Scheme: "https",
			Host:   "storage.googleapis.com",
			Path:   path.Join(u.Host, dir) + "/",
		}
		return baseURL.String()

	case "http", "https":
		u.Path = dir + "/"
		u.RawQuery = ""
		u.Fragment = ""
		return u.String()

	case "":
		localDir := filepath.Dir(scriptURL)
		if localDir == "." {
			return ""
		}
		return filepath.ToSlash(localDir) + "/"

	default:
		slog.Debug("未対応のURLスキームのためベースURLの解決をスキップします", "scheme", u.Scheme)
		return ""
	}
}
